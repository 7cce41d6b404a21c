// Package router composes guards and handlers into the HTTP surface.
// It is kept separate from cmd/server so integration tests run against
// the exact production routing table.
package router

import (
	"github.com/foodexpress/foodexpress-api/internal/handler"
	"github.com/foodexpress/foodexpress-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries everything the routing table needs.
type Options struct {
	JWTSecret    string
	IsProduction bool
	CORSOrigins  []string

	// RateLimiter is optional; when nil no limiting is applied.
	RateLimiter *middleware.RateLimiter

	Users       *handler.UserHandler
	Restaurants *handler.RestaurantHandler
	Menus       *handler.MenuHandler
}

// New builds the engine: boundary middleware first, then the per-route
// guard chains from the access matrix.
func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.ErrorHandler(!opts.IsProduction))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.HSTS(opts.IsProduction))
	r.Use(middleware.Metrics())

	if len(opts.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = opts.CORSOrigins
		corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
		r.Use(cors.New(corsConfig))
	}

	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware())
	}

	auth := middleware.Auth(opts.JWTSecret)
	admin := middleware.RequireAdmin()
	adminOrSelf := middleware.RequireAdminOrSelf()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/api/users")
	{
		users.POST("", opts.Users.Register)
		users.POST("/login", opts.Users.Login)
		users.GET("", auth, admin, opts.Users.GetAll)
		users.GET("/:id", auth, adminOrSelf, opts.Users.GetByID)
		users.PUT("/:id", auth, adminOrSelf, opts.Users.Update)
		users.DELETE("/:id", auth, adminOrSelf, opts.Users.Delete)
	}

	restaurants := r.Group("/api/restaurants")
	{
		restaurants.GET("", opts.Restaurants.GetAll)
		restaurants.GET("/:id", opts.Restaurants.GetByID)
		restaurants.POST("", auth, admin, opts.Restaurants.Create)
		restaurants.PUT("/:id", auth, admin, opts.Restaurants.Update)
		restaurants.DELETE("/:id", auth, admin, opts.Restaurants.Delete)
	}

	menus := r.Group("/api/menus")
	{
		menus.GET("", opts.Menus.GetAll)
		menus.GET("/by-restaurant/:restaurantId", opts.Menus.GetByRestaurant)
		menus.GET("/:id", opts.Menus.GetByID)
		menus.POST("", auth, admin, opts.Menus.Create)
		menus.PUT("/:id", auth, admin, opts.Menus.Update)
		menus.DELETE("/:id", auth, admin, opts.Menus.Delete)
	}

	return r
}
