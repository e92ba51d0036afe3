package app

import (
	"context"
	"log"
	"net/http"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
	"github.com/abdulkashif464-oss/smart-canteen/internal/config"
	httpx "github.com/abdulkashif464-oss/smart-canteen/internal/http"
	"github.com/abdulkashif464-oss/smart-canteen/internal/http/handlers"
	"github.com/abdulkashif464-oss/smart-canteen/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	if err := seedMenu(c); err != nil {
		return err
	}
	seedPolicies(c)

	authH := handlers.NewAuthHandlers(c.AuthSvc, c.OTPSvc, c.SessionRepo)
	menuH := handlers.NewMenuHandlers(c.MenuSvc, c.ShopRepo)
	cartH := handlers.NewCartHandlers(c.CartSvc)
	orderH := handlers.NewOrderHandlers(c.OrderSvc)
	adminH := handlers.NewAdminHandlers(c.MenuSvc, c.ShopRepo)
	polH := &handlers.PolicyHandlers{E: c.Casbin.E}

	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	casbinMW := middleware.NewCasbinMW(c.Casbin.E)

	r := httpx.BuildRouter(authH, menuH, cartH, orderH, adminH, polH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// seedMenu loads the configured catalog on first boot. A non-empty registry
// is left untouched so admin edits survive restarts.
func seedMenu(c *Container) error {
	items, err := c.MenuRepo.List(context.Background())
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}

	seed := make([]domain.MenuItem, 0, len(c.Config.MenuSeed))
	for _, item := range c.Config.MenuSeed {
		seed = append(seed, domain.MenuItem{
			Name:      item.Name,
			Price:     item.Price,
			Available: item.Available,
		})
	}
	if len(seed) == 0 {
		return nil
	}

	if err := c.MenuSvc.ReplaceMenu(context.Background(), seed); err != nil {
		return err
	}
	log.Printf("menu: seeded %d items", len(seed))
	return nil
}

func seedPolicies(c *Container) {
	policies, _ := c.Casbin.E.GetPolicy()
	if len(policies) > 0 {
		return
	}

	c.Casbin.E.AddPolicy("role_admin", "/admin/*", "(GET|POST|PUT|DELETE)")
	c.Casbin.E.AddPolicy("role_admin", "/auth/me", "GET")
	c.Casbin.E.AddPolicy("role_admin", "/auth/logout", "POST")
	c.Casbin.E.AddPolicy("role_student", "/auth/me", "GET")
	c.Casbin.E.AddPolicy("role_student", "/auth/logout", "POST")
	c.Casbin.E.AddPolicy("role_student", "/menu", "GET")
	c.Casbin.E.AddPolicy("role_student", "/cart", "GET")
	c.Casbin.E.AddPolicy("role_student", "/cart/*", "POST")
	c.Casbin.E.AddPolicy("role_student", "/orders", "POST")
	_ = c.Casbin.E.SavePolicy()
	log.Println("casbin: seeded default policies")
}
