package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jusas-smoothie/api/internal/cache"
	"github.com/jusas-smoothie/api/internal/config"
	adminhandlers "github.com/jusas-smoothie/api/internal/http/handlers/admin"
	publichandlers "github.com/jusas-smoothie/api/internal/http/handlers/public"
	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine with all routes and middleware.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "jusas"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// uploaded payment proofs
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", "./"+uploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/logout", publicHandler.Logout)
			auth.GET("/me", AuthMiddleware(&cfg.JWT, c.UserRepo), publicHandler.Me)
		}

		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)

		authed := api.Group("")
		authed.Use(AuthMiddleware(&cfg.JWT, c.UserRepo))
		{
			authed.GET("/cart", publicHandler.GetCart)
			authed.POST("/cart/items", publicHandler.AddCartItem)
			authed.PUT("/cart/items/:id", publicHandler.UpdateCartItem)
			authed.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)
			authed.POST("/cart/merge", publicHandler.MergeCart)

			authed.POST("/orders", publicHandler.CreateOrder)
			authed.GET("/orders", publicHandler.ListOrders)
			authed.GET("/orders/:id", publicHandler.GetOrder)

			authed.POST("/upload", publicHandler.UploadPaymentProof)
		}

		adminRoutes := api.Group("")
		adminRoutes.Use(AuthMiddleware(&cfg.JWT, c.UserRepo), RequireAdmin())
		{
			adminRoutes.POST("/products", adminHandler.CreateProduct)
			adminRoutes.PUT("/products/:id", adminHandler.UpdateProduct)
			adminRoutes.DELETE("/products/:id", adminHandler.DeleteProduct)
			adminRoutes.PATCH("/products/:id/feature", adminHandler.ToggleFeatured)
			adminRoutes.PATCH("/products/:id/stock", adminHandler.AdjustStock)
			adminRoutes.POST("/products/:id/duplicate", adminHandler.DuplicateProduct)

			adminRoutes.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			adminRoutes.GET("/admin/stats", adminHandler.GetStats)
		}
	}

	return r
}
