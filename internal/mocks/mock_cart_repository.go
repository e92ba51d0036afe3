package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockCartRepository implements domain.CartRepository interface for testing.
// Without overrides it behaves as an in-memory cart store.
type MockCartRepository struct {
	AppendFunc func(ctx context.Context, sessionID string, line domain.CartLine) error
	LinesFunc  func(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	ClearFunc  func(ctx context.Context, sessionID string) error

	Carts map[string][]domain.CartLine
}

// NewMockCartRepository creates a new MockCartRepository with default behaviors
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{Carts: make(map[string][]domain.CartLine)}
}

// Append appends a cart line
func (m *MockCartRepository) Append(ctx context.Context, sessionID string, line domain.CartLine) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, sessionID, line)
	}
	m.Carts[sessionID] = append(m.Carts[sessionID], line)
	return nil
}

// Lines returns the cart lines in add order
func (m *MockCartRepository) Lines(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	if m.LinesFunc != nil {
		return m.LinesFunc(ctx, sessionID)
	}
	return m.Carts[sessionID], nil
}

// Clear empties the cart
func (m *MockCartRepository) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	delete(m.Carts, sessionID)
	return nil
}

// Compile-time interface compliance verification
var _ domain.CartRepository = (*MockCartRepository)(nil)
