package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/store-api/internal/api/handler"
	"github.com/shoplite/store-api/internal/api/middleware"
	"github.com/shoplite/store-api/internal/core/domain"
	"github.com/shoplite/store-api/internal/core/service"
	"github.com/shoplite/store-api/internal/core/token"
	mongodb "github.com/shoplite/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shoplite/store-api/internal/infrastructure/db/redis"
	"github.com/shoplite/store-api/internal/infrastructure/memory"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, secureCookies bool, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shoplite"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	// The cart store lives for the whole process; carts are not persisted.
	cartStore := memory.NewCartStore()

	// --- Services ---
	authService := service.NewAuthService(userRepo, adminRepo, codec, limiter, activityRepo, log)
	catalogService := service.NewCatalogService(productRepo, log)
	cartService := service.NewCartService(productRepo, cartStore, activityRepo, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, cartStore, activityRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, secureCookies)
	productHandler := handler.NewProductHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	activityHandler := handler.NewActivityHandler(activityRepo)

	userGate := middleware.UserAuth(codec)
	adminGate := middleware.AdminAuth(codec)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/search", productHandler.Search)

	// --- User routes ---
	userAPI := e.Group("/api", userGate)
	userAPI.GET("/check", authHandler.Check)
	userAPI.POST("/logout", authHandler.Logout)
	userAPI.GET("/cart/items", cartHandler.Items)
	userAPI.POST("/cart/add", cartHandler.Add)
	userAPI.DELETE("/cart/delete", cartHandler.Remove)
	userAPI.POST("/cart/clear", cartHandler.Clear)
	userAPI.POST("/purchases", purchaseHandler.Checkout)

	// --- Admin routes ---
	e.POST("/admin/login", authHandler.AdminLogin)
	admin := e.Group("/admin", adminGate, adminOnly)
	admin.POST("/products", productHandler.Create)
	admin.DELETE("/products", productHandler.Delete)
	admin.GET("/purchases", purchaseHandler.List)
	admin.GET("/activity", activityHandler.List)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
