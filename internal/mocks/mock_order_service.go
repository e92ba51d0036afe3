package mocks

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MockOrderService implements domain.OrderService interface for testing
type MockOrderService struct {
	PlaceOrderFunc func(ctx context.Context, sessionID string, mode domain.PaymentMode, utr string) (*domain.OrderConfirmation, error)
}

// NewMockOrderService creates a new MockOrderService with default behaviors
func NewMockOrderService() *MockOrderService {
	return &MockOrderService{}
}

// PlaceOrder finalizes an order
func (m *MockOrderService) PlaceOrder(ctx context.Context, sessionID string, mode domain.PaymentMode, utr string) (*domain.OrderConfirmation, error) {
	if m.PlaceOrderFunc != nil {
		return m.PlaceOrderFunc(ctx, sessionID, mode, utr)
	}
	return nil, domain.ErrCartEmpty
}

// Compile-time interface compliance verification
var _ domain.OrderService = (*MockOrderService)(nil)
