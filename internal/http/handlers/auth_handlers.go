package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc     domain.AuthService
	otpSvc      domain.OTPService
	sessionRepo domain.SessionRepository
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, otpSvc domain.OTPService, sessionRepo domain.SessionRepository) *AuthHandlers {
	return &AuthHandlers{
		authSvc:     authSvc,
		otpSvc:      otpSvc,
		sessionRepo: sessionRepo,
	}
}

// SendOTPRequest represents an OTP issue request
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// StudentLoginRequest represents a student OTP login request
type StudentLoginRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// AdminLoginRequest represents an admin credential login request
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SendOTP handles OTP generation and sending
func (h *AuthHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := h.otpSvc.Issue(c.Request.Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPhone):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Enter valid 10-digit number"})
		case errors.Is(err, domain.ErrOTPResendLimit):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send OTP"})
		}
		return
	}

	log.Printf("%s: phone=%s timestamp=%s",
		domain.OTPIssuedEvent, req.Phone, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "OTP sent successfully",
		},
	})
}

// StudentLogin handles student OTP-based login
func (h *AuthHandlers) StudentLogin(c *gin.Context) {
	var req StudentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.LoginStudent(c.Request.Context(), req.Phone, req.Code)
	if err != nil {
		switch err {
		case domain.ErrOTPNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "OTP not found"})
		case domain.ErrOTPMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Maximum attempts exceeded"})
		case domain.ErrOTPInvalid:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid OTP"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	log.Printf("%s: session_id=%s phone=%s timestamp=%s",
		domain.StudentLoginEvent, result.Session.ID, req.Phone, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, loginResponse(result))
}

// AdminLogin handles admin credential-based login
func (h *AuthHandlers) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.LoginAdmin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			log.Printf("%s: username=%s timestamp=%s",
				domain.AdminLoginFailedEvent, req.Username, time.Now().UTC().Format(time.RFC3339))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access Denied. Contact Support to verify your college."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	log.Printf("%s: session_id=%s username=%s timestamp=%s",
		domain.AdminLoginEvent, result.Session.ID, req.Username, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, loginResponse(result))
}

// Me handles getting the current session (requires authentication)
func (h *AuthHandlers) Me(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ID not found in context"})
		return
	}

	session, err := h.sessionRepo.FindByID(c.Request.Context(), sessionID.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalid or expired"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"session_id": session.ID,
			"role":       session.Role,
			"phone":      session.Phone,
			"username":   session.Username,
			"created_at": session.CreatedAt,
			"expires_at": session.ExpiresAt,
		},
	})
}

// Logout handles logout for both roles (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID not found"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), sessionID.(string)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	log.Printf("%s: session_id=%s timestamp=%s",
		domain.LogoutEvent, sessionID, time.Now().UTC().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}

func loginResponse(result *domain.AuthResult) gin.H {
	return gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"token_type":   "Bearer",
			"expires_in":   result.ExpiresIn,
			"session": gin.H{
				"id":   result.Session.ID,
				"role": result.Session.Role,
			},
		},
	}
}
