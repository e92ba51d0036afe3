package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockCartService implements domain.CartService interface for testing
type MockCartService struct {
	AddItemFunc  func(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error)
	ViewCartFunc func(ctx context.Context, sessionID string) ([]domain.CartLine, domain.Bill, error)
	ClearFunc    func(ctx context.Context, sessionID string) error
}

// NewMockCartService creates a new MockCartService with default behaviors
func NewMockCartService() *MockCartService {
	return &MockCartService{}
}

// AddItem appends a snapshot of the named item
func (m *MockCartService) AddItem(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, sessionID, itemName)
	}
	return nil, domain.ErrItemNotFound
}

// ViewCart returns lines and the derived bill
func (m *MockCartService) ViewCart(ctx context.Context, sessionID string) ([]domain.CartLine, domain.Bill, error) {
	if m.ViewCartFunc != nil {
		return m.ViewCartFunc(ctx, sessionID)
	}
	return nil, domain.Bill{}, nil
}

// Clear empties the cart
func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, sessionID)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.CartService = (*MockCartService)(nil)
