package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// AdminHandlers handles the canteen control surface: shop status and menu
// management. Routes are admin-gated by the casbin middleware.
type AdminHandlers struct {
	menuSvc  domain.MenuService
	shopRepo domain.ShopStatusRepository
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(menuSvc domain.MenuService, shopRepo domain.ShopStatusRepository) *AdminHandlers {
	return &AdminHandlers{
		menuSvc:  menuSvc,
		shopRepo: shopRepo,
	}
}

// SetShopStatusRequest represents a shop status change
type SetShopStatusRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// ReplaceMenuRequest represents a whole-menu save
type ReplaceMenuRequest struct {
	Items []domain.MenuItem `json:"items" binding:"required"`
}

// GetShopStatus returns the shared shop open flag
func (h *AdminHandlers) GetShopStatus(c *gin.Context) {
	open, err := h.shopRepo.IsOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read shop status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"open": open,
		},
	})
}

// SetShopStatus toggles order acceptance for every student session
func (h *AdminHandlers) SetShopStatus(c *gin.Context) {
	var req SetShopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.shopRepo.SetOpen(c.Request.Context(), *req.Open); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop status"})
		return
	}

	log.Printf("%s: open=%t timestamp=%s",
		domain.ShopStatusChangedEvent, *req.Open, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"open": *req.Open,
		},
	})
}

// Menu returns the full catalog, including unavailable items
func (h *AdminHandlers) Menu(c *gin.Context) {
	items, err := h.menuSvc.Menu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items": items,
		},
	})
}

// ReplaceMenu saves the whole catalog in one write: last full write wins
func (h *AdminHandlers) ReplaceMenu(c *gin.Context) {
	var req ReplaceMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.menuSvc.ReplaceMenu(c.Request.Context(), req.Items); err != nil {
		switch err {
		case domain.ErrMenuItemName, domain.ErrInvalidPrice, domain.ErrDuplicateMenuItem:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		}
		return
	}

	log.Printf("%s: items=%d timestamp=%s",
		domain.MenuReplacedEvent, len(req.Items), time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Menu Updated Successfully!",
		},
	})
}
