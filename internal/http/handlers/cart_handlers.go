package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// CartHandlers handles cart and billing HTTP requests
type CartHandlers struct {
	cartSvc domain.CartService
}

// NewCartHandlers creates new cart handlers
func NewCartHandlers(cartSvc domain.CartService) *CartHandlers {
	return &CartHandlers{cartSvc: cartSvc}
}

// AddItemRequest represents a cart add request
type AddItemRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddItem appends a snapshot of the named menu item to the session's cart
func (h *CartHandlers) AddItem(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ID not found in context"})
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.cartSvc.AddItem(c.Request.Context(), sessionID.(string), req.Name)
	if err != nil {
		switch err {
		case domain.ErrShopClosed:
			c.JSON(http.StatusForbidden, gin.H{"error": "The Canteen is currently CLOSED. Please check back later."})
		case domain.ErrItemNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		case domain.ErrItemUnavailable:
			c.JSON(http.StatusConflict, gin.H{"error": "Menu item is not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Added " + line.Name,
			"line":    line,
		},
	})
}

// ViewCart returns the cart lines and the derived bill
func (h *CartHandlers) ViewCart(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ID not found in context"})
		return
	}

	lines, bill, err := h.cartSvc.ViewCart(c.Request.Context(), sessionID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"lines": lines,
			"bill":  bill,
		},
	})
}
