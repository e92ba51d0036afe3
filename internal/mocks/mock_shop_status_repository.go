package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockShopStatusRepository implements domain.ShopStatusRepository interface for testing
type MockShopStatusRepository struct {
	IsOpenFunc  func(ctx context.Context) (bool, error)
	SetOpenFunc func(ctx context.Context, open bool) error

	Open bool
}

// NewMockShopStatusRepository creates a new MockShopStatusRepository, open by default
func NewMockShopStatusRepository() *MockShopStatusRepository {
	return &MockShopStatusRepository{Open: true}
}

// IsOpen reports the shop open flag
func (m *MockShopStatusRepository) IsOpen(ctx context.Context) (bool, error) {
	if m.IsOpenFunc != nil {
		return m.IsOpenFunc(ctx)
	}
	return m.Open, nil
}

// SetOpen updates the shop open flag
func (m *MockShopStatusRepository) SetOpen(ctx context.Context, open bool) error {
	if m.SetOpenFunc != nil {
		return m.SetOpenFunc(ctx, open)
	}
	m.Open = open
	return nil
}

// Compile-time interface compliance verification
var _ domain.ShopStatusRepository = (*MockShopStatusRepository)(nil)
