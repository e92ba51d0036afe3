package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// MenuHandlers handles the student-facing menu endpoint
type MenuHandlers struct {
	menuSvc  domain.MenuService
	shopRepo domain.ShopStatusRepository
}

// NewMenuHandlers creates new menu handlers
func NewMenuHandlers(menuSvc domain.MenuService, shopRepo domain.ShopStatusRepository) *MenuHandlers {
	return &MenuHandlers{
		menuSvc:  menuSvc,
		shopRepo: shopRepo,
	}
}

// StudentMenu returns available items only. A closed shop short-circuits
// the whole student ordering surface, not just a warning.
func (h *MenuHandlers) StudentMenu(c *gin.Context) {
	open, err := h.shopRepo.IsOpen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read shop status"})
		return
	}
	if !open {
		c.JSON(http.StatusForbidden, gin.H{"error": "The Canteen is currently CLOSED. Please check back later."})
		return
	}

	items, err := h.menuSvc.AvailableMenu(c.Request.Context())
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
