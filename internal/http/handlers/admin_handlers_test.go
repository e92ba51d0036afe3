package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
	"github.com/abdulkashif464-oss/smart-canteen/internal/mocks"
)

func TestAdminHandlers_ShopStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	shopRepo := mocks.NewMockShopStatusRepository()
	handler := NewAdminHandlers(mocks.NewMockMenuService(), shopRepo)

	w := performJSON(t, handler.GetShopStatus, http.MethodGet, "/admin/shop", nil, "sess_admin_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["open"] != true {
		t.Errorf("expected shop open by default, got %v", data["open"])
	}

	closed := false
	w = performJSON(t, handler.SetShopStatus, http.MethodPost, "/admin/shop", SetShopStatusRequest{Open: &closed}, "sess_admin_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if shopRepo.Open {
		t.Error("expected repository flag to flip to closed")
	}

	w = performJSON(t, handler.GetShopStatus, http.MethodGet, "/admin/shop", nil, "sess_admin_1")
	data = decodeBody(t, w)["data"].(map[string]interface{})
	if data["open"] != false {
		t.Errorf("expected shop closed after toggle, got %v", data["open"])
	}
}

// "open" must be an explicit boolean: an absent field is a bad request, not
// an implicit close.
func TestAdminHandlers_SetShopStatusRequiresFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewAdminHandlers(mocks.NewMockMenuService(), mocks.NewMockShopStatusRepository())
	w := performJSON(t, handler.SetShopStatus, http.MethodPost, "/admin/shop", map[string]string{}, "sess_admin_1")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing open flag, got %d", w.Code)
	}
}

func TestAdminHandlers_Menu(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockMenuSvc := mocks.NewMockMenuService()
	mockMenuSvc.MenuFunc = func(ctx context.Context) ([]domain.MenuItem, error) {
		return []domain.MenuItem{
			{Name: "Samosa", Price: 15, Available: true},
			{Name: "Veg Biryani", Price: 60, Available: false},
		}, nil
	}
	handler := NewAdminHandlers(mockMenuSvc, mocks.NewMockShopStatusRepository())

	w := performJSON(t, handler.Menu, http.MethodGet, "/admin/menu", nil, "sess_admin_1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	items, ok := data["items"].([]interface{})
	if !ok || len(items) != 2 {
		t.Fatalf("expected full catalog including unavailable items, got %v", data["items"])
	}
}

func TestAdminHandlers_ReplaceMenu(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*mocks.MockMenuService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "catalog saved",
			requestBody: ReplaceMenuRequest{Items: []domain.MenuItem{
				{Name: "Samosa", Price: 15, Available: true},
			}},
			setupMocks:     func(menuSvc *mocks.MockMenuService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "negative price rejected",
			requestBody: ReplaceMenuRequest{Items: []domain.MenuItem{
				{Name: "Samosa", Price: -1, Available: true},
			}},
			setupMocks: func(menuSvc *mocks.MockMenuService) {
				menuSvc.ReplaceMenuFunc = func(ctx context.Context, items []domain.MenuItem) error {
					return domain.ErrInvalidPrice
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate names rejected",
			requestBody: ReplaceMenuRequest{Items: []domain.MenuItem{
				{Name: "Tea", Price: 10, Available: true},
				{Name: "Tea", Price: 12, Available: true},
			}},
			setupMocks: func(menuSvc *mocks.MockMenuService) {
				menuSvc.ReplaceMenuFunc = func(ctx context.Context, items []domain.MenuItem) error {
					return domain.ErrDuplicateMenuItem
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing items field",
			requestBody:    map[string]string{},
			setupMocks:     func(menuSvc *mocks.MockMenuService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockMenuSvc := mocks.NewMockMenuService()
			tt.setupMocks(mockMenuSvc)
			handler := NewAdminHandlers(mockMenuSvc, mocks.NewMockShopStatusRepository())

			w := performJSON(t, handler.ReplaceMenu, http.MethodPut, "/admin/menu", tt.requestBody, "sess_admin_1")

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedStatus == http.StatusOK {
				data := decodeBody(t, w)["data"].(map[string]interface{})
				if data["message"] != "Menu Updated Successfully!" {
					t.Errorf("unexpected message: %v", data["message"])
				}
			}
		})
	}
}
