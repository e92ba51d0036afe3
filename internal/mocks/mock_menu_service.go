package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockMenuService implements domain.MenuService interface for testing
type MockMenuService struct {
	MenuFunc          func(ctx context.Context) ([]domain.MenuItem, error)
	AvailableMenuFunc func(ctx context.Context) ([]domain.MenuItem, error)
	ReplaceMenuFunc   func(ctx context.Context, items []domain.MenuItem) error
}

// NewMockMenuService creates a new MockMenuService with default behaviors
func NewMockMenuService() *MockMenuService {
	return &MockMenuService{}
}

// Menu returns the full catalog
func (m *MockMenuService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	if m.MenuFunc != nil {
		return m.MenuFunc(ctx)
	}
	return nil, nil
}

// AvailableMenu returns only available items
func (m *MockMenuService) AvailableMenu(ctx context.Context) ([]domain.MenuItem, error) {
	if m.AvailableMenuFunc != nil {
		return m.AvailableMenuFunc(ctx)
	}
	return nil, nil
}

// ReplaceMenu swaps the whole catalog
func (m *MockMenuService) ReplaceMenu(ctx context.Context, items []domain.MenuItem) error {
	if m.ReplaceMenuFunc != nil {
		return m.ReplaceMenuFunc(ctx, items)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.MenuService = (*MockMenuService)(nil)
