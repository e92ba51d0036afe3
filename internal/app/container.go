package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/abdulkashif464-oss/smart-canteen/domain"
	"github.com/abdulkashif464-oss/smart-canteen/internal/config"
	"github.com/abdulkashif464-oss/smart-canteen/internal/infrastructure/auth"
	"github.com/abdulkashif464-oss/smart-canteen/internal/infrastructure/database"
	"github.com/abdulkashif464-oss/smart-canteen/internal/infrastructure/notifications"
	"github.com/abdulkashif464-oss/smart-canteen/internal/infrastructure/repositories"
	"github.com/abdulkashif464-oss/smart-canteen/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	SessionRepo domain.SessionRepository
	CartRepo    domain.CartRepository
	MenuRepo    domain.MenuRepository
	ShopRepo    domain.ShopStatusRepository

	// Services
	CredStore       domain.CredentialStore
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	MenuSvc         domain.MenuService
	CartSvc         domain.CartService
	OrderSvc        domain.OrderService
	PolicySvc       domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()

	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
	return nil
}

func (c *Container) initRepositories() {
	c.SessionRepo = repositories.NewSessionRepository(c.RedisClient, c.Config.SessionTTL)
	c.CartRepo = repositories.NewCartRepository(c.RedisClient, c.Config.SessionTTL)
	c.MenuRepo = repositories.NewMenuRepository(c.DB)
	c.ShopRepo = repositories.NewShopStatusRepository(c.RedisClient)
}

func (c *Container) initServices() error {
	c.CredStore = auth.NewCredentialStore(c.Config.Admins)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	otpConfig := services.OTPConfig{
		TTL:          c.Config.OTP_TTL,
		MaxAttempts:  c.Config.OTP_MaxAttempts,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.RedisClient, otpConfig)

	c.AuthSvc = services.NewAuthService(
		c.SessionRepo,
		c.CartRepo,
		c.CredStore,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.SessionTTL,
		c.Config.AccessTTL,
	)

	billing := services.BillingConfig{
		StudentFee: c.Config.StudentFee,
		Commission: c.Config.Commission,
	}
	c.MenuSvc = services.NewMenuService(c.MenuRepo)
	c.CartSvc = services.NewCartService(c.CartRepo, c.MenuRepo, c.ShopRepo, billing)
	c.OrderSvc = services.NewOrderService(c.CartRepo, c.ShopRepo, billing)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)

	return nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
