package main

import (
	"log"

	"github.com/foodexpress/foodexpress-api/internal/audit"
	"github.com/foodexpress/foodexpress-api/internal/config"
	"github.com/foodexpress/foodexpress-api/internal/database"
	"github.com/foodexpress/foodexpress-api/internal/handler"
	"github.com/foodexpress/foodexpress-api/internal/middleware"
	"github.com/foodexpress/foodexpress-api/internal/repository"
	"github.com/foodexpress/foodexpress-api/internal/router"
	"github.com/foodexpress/foodexpress-api/internal/service"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Audit trail of authenticated mutations (optional)
	var auditLog *audit.Log
	if cfg.AuditPath != "" {
		var err error
		auditLog, err = audit.Open(cfg.AuditPath)
		if err != nil {
			log.Fatalf("Failed to open audit log: %v", err)
		}
		defer auditLog.Close()
	}

	// Rate limiter (optional, requires Redis)
	var rateLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		rateLimiter = middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
	}

	// Repositories
	userRepo := repository.NewUserRepository(database.DB)
	restaurantRepo := repository.NewRestaurantRepository(database.DB)
	menuRepo := repository.NewMenuRepository(database.DB)

	// Services
	userService := service.NewUserService(userRepo)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	menuService := service.NewMenuService(menuRepo, restaurantRepo)

	// Handlers
	userHandler := handler.NewUserHandler(userService, auditLog, cfg.JWTSecret, cfg.JWTExpiry)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService, auditLog)
	menuHandler := handler.NewMenuHandler(menuService, auditLog)

	r := router.New(router.Options{
		JWTSecret:    cfg.JWTSecret,
		IsProduction: cfg.IsProduction(),
		CORSOrigins:  cfg.CORSAllowOrigins,
		RateLimiter:  rateLimiter,
		Users:        userHandler,
		Restaurants:  restaurantHandler,
		Menus:        menuHandler,
	})

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := r.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
