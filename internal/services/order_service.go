package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// OrderServiceImpl implements domain.OrderService. Placing an order is a
// transition, not a record: payment proof is validated, the cart is cleared
// and a confirmation is minted. Orders are not persisted.
type OrderServiceImpl struct {
	cartRepo domain.CartRepository
	shopRepo domain.ShopStatusRepository
	billing  BillingConfig
}

// NewOrderService creates a new order service
func NewOrderService(
	cartRepo domain.CartRepository,
	shopRepo domain.ShopStatusRepository,
	billing BillingConfig,
) domain.OrderService {
	return &OrderServiceImpl{
		cartRepo: cartRepo,
		shopRepo: shopRepo,
		billing:  billing,
	}
}

// PlaceOrder implements domain.OrderService. UPI orders require a
// transaction reference; validation is presence-only, the reference itself
// is never checked against a gateway.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, sessionID string, mode domain.PaymentMode, utr string) (*domain.OrderConfirmation, error) {
	open, err := s.shopRepo.IsOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, domain.ErrShopClosed
	}

	lines, err := s.cartRepo.Lines(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrCartEmpty
	}

	switch mode {
	case domain.PaymentUPI:
		if utr == "" {
			return nil, domain.ErrMissingUTR
		}
	case domain.PaymentCash:
	default:
		return nil, domain.ErrInvalidPaymentMode
	}

	confirmation := &domain.OrderConfirmation{
		ID:          uuid.NewString(),
		Lines:       lines,
		Bill:        s.billing.ComputeBill(lines),
		PaymentMode: mode,
		UTR:         utr,
		PlacedAt:    time.Now(),
	}

	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		return nil, err
	}

	log.Printf("%s: order_id=%s session_id=%s mode=%s total=%.2f timestamp=%s",
		domain.OrderPlacedEvent, confirmation.ID, sessionID, mode,
		confirmation.Bill.Total, confirmation.PlacedAt.UTC().Format(time.RFC3339))

	return confirmation, nil
}
