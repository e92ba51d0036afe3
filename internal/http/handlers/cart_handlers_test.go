package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
	"github.com/abdulkashif464-oss/smart-canteen/internal/mocks"
)

func TestCartHandlers_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockCartService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "item added",
			requestBody: AddItemRequest{Name: "Samosa"},
			setupMocks: func(cartSvc *mocks.MockCartService) {
				cartSvc.AddItemFunc = func(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
					return &domain.CartLine{Name: itemName, Price: 15}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "shop closed",
			requestBody: AddItemRequest{Name: "Samosa"},
			setupMocks: func(cartSvc *mocks.MockCartService) {
				cartSvc.AddItemFunc = func(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
					return nil, domain.ErrShopClosed
				}
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  "The Canteen is currently CLOSED. Please check back later.",
		},
		{
			name:        "unknown item",
			requestBody: AddItemRequest{Name: "Pizza"},
			setupMocks: func(cartSvc *mocks.MockCartService) {
				cartSvc.AddItemFunc = func(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
					return nil, domain.ErrItemNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "item marked unavailable",
			requestBody: AddItemRequest{Name: "Veg Biryani"},
			setupMocks: func(cartSvc *mocks.MockCartService) {
				cartSvc.AddItemFunc = func(ctx context.Context, sessionID, itemName string) (*domain.CartLine, error) {
					return nil, domain.ErrItemUnavailable
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing name field",
			requestBody:    map[string]string{},
			setupMocks:     func(cartSvc *mocks.MockCartService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCartSvc := mocks.NewMockCartService()
			tt.setupMocks(mockCartSvc)
			handler := NewCartHandlers(mockCartSvc)

			w := performJSON(t, handler.AddItem, http.MethodPost, "/cart/items", tt.requestBody, "sess_student_1")

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedError != "" {
				body := decodeBody(t, w)
				if body["error"] != tt.expectedError {
					t.Errorf("expected error %q, got %v", tt.expectedError, body["error"])
				}
			}
		})
	}
}

func TestCartHandlers_AddItemRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewCartHandlers(mocks.NewMockCartService())
	w := performJSON(t, handler.AddItem, http.MethodPost, "/cart/items", AddItemRequest{Name: "Samosa"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without session, got %d", w.Code)
	}
}

func TestCartHandlers_ViewCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockCartSvc := mocks.NewMockCartService()
	mockCartSvc.ViewCartFunc = func(ctx context.Context, sessionID string) ([]domain.CartLine, domain.Bill, error) {
		lines := []domain.CartLine{
			{Name: "Samosa", Price: 15},
			{Name: "Tea", Price: 10},
		}
		return lines, domain.Bill{Subtotal: 25, StudentFee: 1, Total: 26, Commission: 2}, nil
	}
	handler := NewCartHandlers(mockCartSvc)

	w := performJSON(t, handler.ViewCart, http.MethodGet, "/cart", nil, "sess_student_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	data := decodeBody(t, w)["data"].(map[string]interface{})
	lines, ok := data["lines"].([]interface{})
	if !ok || len(lines) != 2 {
		t.Fatalf("expected 2 cart lines, got %v", data["lines"])
	}
	bill, ok := data["bill"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected bill object, got %v", data["bill"])
	}
	if bill["subtotal"] != float64(25) || bill["total"] != float64(26) {
		t.Errorf("unexpected bill: %v", bill)
	}
	if bill["commission"] != float64(2) {
		t.Errorf("expected flat commission of 2, got %v", bill["commission"])
	}
}
