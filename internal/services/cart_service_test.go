package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
	"github.com/abdulkashif464-oss/smart-canteen/internal/mocks"
)

var testBilling = BillingConfig{StudentFee: 1.00, Commission: 2.00}

func createCartServiceForTest() (domain.CartService, *mocks.MockCartRepository, *mocks.MockMenuRepository, *mocks.MockShopStatusRepository) {
	cartRepo := mocks.NewMockCartRepository()
	menuRepo := mocks.NewMockMenuRepository()
	shopRepo := mocks.NewMockShopStatusRepository()
	menuRepo.Items = seedMenuItems()

	cartSvc := NewCartService(cartRepo, menuRepo, shopRepo, testBilling)
	return cartSvc, cartRepo, menuRepo, shopRepo
}

func TestBillingConfig_ComputeBill(t *testing.T) {
	tests := []struct {
		name     string
		lines    []domain.CartLine
		expected domain.Bill
	}{
		{
			name:     "empty cart",
			lines:    nil,
			expected: domain.Bill{Subtotal: 0, StudentFee: 1.00, Total: 1.00, Commission: 2.00},
		},
		{
			name: "samosa and tea",
			lines: []domain.CartLine{
				{Name: "Samosa", Price: 15},
				{Name: "Tea", Price: 10},
			},
			expected: domain.Bill{Subtotal: 25, StudentFee: 1.00, Total: 26.00, Commission: 2.00},
		},
		{
			name: "commission stays flat for large carts",
			lines: []domain.CartLine{
				{Name: "Veg Biryani", Price: 60},
				{Name: "Veg Biryani", Price: 60},
				{Name: "Veg Biryani", Price: 60},
				{Name: "Samosa", Price: 15},
			},
			expected: domain.Bill{Subtotal: 195, StudentFee: 1.00, Total: 196.00, Commission: 2.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := testBilling.ComputeBill(tt.lines)
			if bill != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, bill)
			}

			// Pure: computing twice yields identical results
			if again := testBilling.ComputeBill(tt.lines); again != bill {
				t.Errorf("ComputeBill is not pure: %+v != %+v", again, bill)
			}
		})
	}
}

func TestCartServiceImpl_AddItem(t *testing.T) {
	t.Run("snapshot is captured at add time", func(t *testing.T) {
		cartSvc, cartRepo, menuRepo, _ := createCartServiceForTest()
		ctx := context.Background()

		line, err := cartSvc.AddItem(ctx, "sess_1", "Samosa")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Name != "Samosa" || line.Price != 15 {
			t.Errorf("expected snapshot {Samosa 15}, got %+v", line)
		}

		// Admin repricing after the add must not touch the cart line
		menuRepo.Items[0].Price = 99

		lines, _, err := cartSvc.ViewCart(ctx, "sess_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lines[0].Price != 15 {
			t.Errorf("expected locked-in price 15, got %v", lines[0].Price)
		}
		_ = cartRepo
	})

	t.Run("adding twice yields two lines", func(t *testing.T) {
		cartSvc, _, _, _ := createCartServiceForTest()
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			if _, err := cartSvc.AddItem(ctx, "sess_1", "Tea"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		lines, bill, err := cartSvc.ViewCart(ctx, "sess_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if bill.Subtotal != 20 {
			t.Errorf("expected subtotal 20, got %v", bill.Subtotal)
		}
	})

	t.Run("closed shop gates the add", func(t *testing.T) {
		cartSvc, cartRepo, _, shopRepo := createCartServiceForTest()
		shopRepo.Open = false

		_, err := cartSvc.AddItem(context.Background(), "sess_1", "Samosa")
		if !errors.Is(err, domain.ErrShopClosed) {
			t.Errorf("expected ErrShopClosed, got %v", err)
		}
		if len(cartRepo.Carts["sess_1"]) != 0 {
			t.Error("nothing should be appended when the shop is closed")
		}
	})

	t.Run("unknown item", func(t *testing.T) {
		cartSvc, _, _, _ := createCartServiceForTest()

		_, err := cartSvc.AddItem(context.Background(), "sess_1", "Pizza")
		if !errors.Is(err, domain.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("unavailable item", func(t *testing.T) {
		cartSvc, _, _, _ := createCartServiceForTest()

		// Veg Biryani is seeded as unavailable
		_, err := cartSvc.AddItem(context.Background(), "sess_1", "Veg Biryani")
		if !errors.Is(err, domain.ErrItemUnavailable) {
			t.Errorf("expected ErrItemUnavailable, got %v", err)
		}
	})
}

func TestCartServiceImpl_Clear(t *testing.T) {
	cartSvc, cartRepo, _, _ := createCartServiceForTest()
	ctx := context.Background()

	cartRepo.Carts["sess_1"] = []domain.CartLine{{Name: "Samosa", Price: 15}}

	if err := cartSvc.Clear(ctx, "sess_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines, bill, err := cartSvc.ViewCart(ctx, "sess_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart, got %v", lines)
	}
	expected := domain.Bill{Subtotal: 0, StudentFee: 1.00, Total: 1.00, Commission: 2.00}
	if !reflect.DeepEqual(bill, expected) {
		t.Errorf("expected %+v, got %+v", expected, bill)
	}
}
