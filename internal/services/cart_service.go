package services

import (
	"context"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// BillingConfig carries the fixed billing constants: a flat per-order
// student fee and a flat platform commission shown on every bill.
type BillingConfig struct {
	StudentFee float64
	Commission float64
}

// ComputeBill derives a bill from cart lines. It is a pure function: the
// total is the line subtotal plus the student fee, and the commission is a
// constant regardless of cart size.
func (b BillingConfig) ComputeBill(lines []domain.CartLine) domain.Bill {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price
	}
	return domain.Bill{
		Subtotal:   subtotal,
		StudentFee: b.StudentFee,
		Total:      subtotal + b.StudentFee,
		Commission: b.Commission,
	}
}

// CartServiceImpl implements domain.CartService
type CartServiceImpl struct {
	cartRepo domain.CartRepository
	menuRepo domain.MenuRepository
	shopRepo domain.ShopStatusRepository
	billing  BillingConfig
}

// NewCartService creates a new cart service
func NewCartService(
	cartRepo domain.CartRepository,
	menuRepo domain.MenuRepository,
	shopRepo domain.ShopStatusRepository,
	billing BillingConfig,
) domain.CartService {
	return &CartServiceImpl{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		shopRepo: shopRepo,
		billing:  billing,
	}
}

// AddItem implements domain.CartService. The item's name and price are
// snapshotted into the cart line: later menu edits never change lines
// already added. Adding the same item twice yields two lines.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
	open, err := s.shopRepo.IsOpen(ctx)
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, domain.ErrShopClosed
	}

	item, err := s.menuRepo.FindByName(ctx, itemName)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, domain.ErrItemUnavailable
	}

	line := domain.CartLine{
		Name:  item.Name,
		Price: item.Price,
	}
	if err := s.cartRepo.Append(ctx, sessionID, line); err != nil {
		return nil, err
	}

	return &line, nil
}

// ViewCart implements domain.CartService
func (s *CartServiceImpl) ViewCart(ctx context.Context, sessionID string) ([]domain.CartLine, domain.Bill, error) {
	lines, err := s.cartRepo.Lines(ctx, sessionID)
	if err != nil {
		return nil, domain.Bill{}, err
	}
	return lines, s.billing.ComputeBill(lines), nil
}

// Clear implements domain.CartService
func (s *CartServiceImpl) Clear(ctx context.Context, sessionID string) error {
	return s.cartRepo.Clear(ctx, sessionID)
}
