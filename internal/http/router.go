package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/abdulkashif464-oss/smart-canteen/internal/http/handlers"
	"github.com/abdulkashif464-oss/smart-canteen/internal/http/middleware"
)

func BuildRouter(
	ah *handlers.AuthHandlers,
	mh *handlers.MenuHandlers,
	ch *handlers.CartHandlers,
	oh *handlers.OrderHandlers,
	adh *handlers.AdminHandlers,
	ph *handlers.PolicyHandlers,
	jwtmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/otp/send", ah.SendOTP)
	auth.POST("/student/login", ah.StudentLogin)
	auth.POST("/admin/login", ah.AdminLogin)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/auth/logout", ah.Logout)
	v.GET("/menu", mh.StudentMenu)
	v.GET("/cart", ch.ViewCart)
	v.POST("/cart/items", ch.AddItem)
	v.POST("/orders", oh.PlaceOrder)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.GET("/shop", adh.GetShopStatus)
	adm.PUT("/shop", adh.SetShopStatus)
	adm.GET("/menu", adh.Menu)
	adm.PUT("/menu", adh.ReplaceMenu)
	adm.GET("/policies", ph.List)
	adm.POST("/policies", ph.Add)
	adm.DELETE("/policies", ph.Remove)

	return r
}
