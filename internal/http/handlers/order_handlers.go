package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// OrderHandlers handles order placement HTTP requests
type OrderHandlers struct {
	orderSvc domain.OrderService
}

// NewOrderHandlers creates new order handlers
func NewOrderHandlers(orderSvc domain.OrderService) *OrderHandlers {
	return &OrderHandlers{orderSvc: orderSvc}
}

// PlaceOrderRequest represents an order placement request
type PlaceOrderRequest struct {
	PaymentMode string `json:"payment_mode" binding:"required"`
	UTR         string `json:"utr"`
}

// PlaceOrder finalizes the session's cart into an order confirmation
func (h *OrderHandlers) PlaceOrder(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ID not found in context"})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode, err := domain.ParsePaymentMode(req.PaymentMode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment mode"})
		return
	}

	confirmation, err := h.orderSvc.PlaceOrder(c.Request.Context(), sessionID.(string), mode, req.UTR)
	if err != nil {
		switch err {
		case domain.ErrShopClosed:
			c.JSON(http.StatusForbidden, gin.H{"error": "The Canteen is currently CLOSED. Please check back later."})
		case domain.ErrCartEmpty:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case domain.ErrMissingUTR:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter UTR number for verification."})
		case domain.ErrInvalidPaymentMode:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment mode"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message":      "Order Placed! Show this screen at the counter.",
			"confirmation": confirmation,
		},
	})
}
