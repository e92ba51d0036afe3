package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockMenuRepository implements domain.MenuRepository interface for testing.
// Without overrides it behaves as an in-memory registry.
type MockMenuRepository struct {
	ListFunc       func(ctx context.Context) ([]domain.MenuItem, error)
	FindByNameFunc func(ctx context.Context, name string) (*domain.MenuItem, error)
	ReplaceAllFunc func(ctx context.Context, items []domain.MenuItem) error

	Items []domain.MenuItem
}

// NewMockMenuRepository creates a new MockMenuRepository with default behaviors
func NewMockMenuRepository() *MockMenuRepository {
	return &MockMenuRepository{}
}

// List returns all items in insertion order
func (m *MockMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return m.Items, nil
}

// FindByName finds an item by its unique name
func (m *MockMenuRepository) FindByName(ctx context.Context, name string) (*domain.MenuItem, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	for i := range m.Items {
		if m.Items[i].Name == name {
			item := m.Items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

// ReplaceAll swaps the whole catalog
func (m *MockMenuRepository) ReplaceAll(ctx context.Context, items []domain.MenuItem) error {
	if m.ReplaceAllFunc != nil {
		return m.ReplaceAllFunc(ctx, items)
	}
	m.Items = append([]domain.MenuItem(nil), items...)
	return nil
}

// Compile-time interface compliance verification
var _ domain.MenuRepository = (*MockMenuRepository)(nil)
