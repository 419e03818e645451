package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rune905/Beauty-Bloom/controllers"
	"github.com/Rune905/Beauty-Bloom/database"
	"github.com/Rune905/Beauty-Bloom/logger"
	"github.com/Rune905/Beauty-Bloom/middleware"
	"github.com/Rune905/Beauty-Bloom/models"
	"github.com/Rune905/Beauty-Bloom/repository"
	"github.com/Rune905/Beauty-Bloom/routes"
	"github.com/Rune905/Beauty-Bloom/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	if err := logger.Initialize(cfg.Env); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer zap.L().Sync()

	// --- 1. Initialization ---

	if err := database.Connect(); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := models.Migrate(database.DB); err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis is optional: with no REDIS_URL the cache layer becomes a no-op.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			zap.L().Warn("Failed to parse REDIS_URL, caching disabled", zap.Error(err))
		} else {
			redisClient = redis.NewClient(opts)
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				zap.L().Warn("Redis unreachable, caching disabled", zap.Error(err))
				redisClient = nil
			}
		}
	}

	// --- 2. Dependency Injection (Wiring the layers together) ---

	productRepo := repository.NewGormProductRepository(database.DB)
	categoryRepo := repository.NewGormCategoryRepository(database.DB)
	brandRepo := repository.NewGormBrandRepository(database.DB)
	userRepo := repository.NewGormUserRepository(database.DB)
	adminRepo := repository.NewGormAdminRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	productService := services.NewProductService(productRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo, productRepo)
	brandService := services.NewBrandService(brandRepo)
	authService := services.NewAuthService(userRepo, adminRepo, tokens)
	orderService := services.NewOrderService(orderRepo)
	dashboardService := services.NewDashboardService(userRepo, productRepo, orderRepo)
	uploadService := services.NewUploadService(cfg.UploadDir, cfg.BaseURL)

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			zap.L().Warn("Failed to ensure bootstrap admin", zap.Error(err))
		}
	}

	cache := controllers.NewCacheManager(redisClient)

	ctrl := routes.Controllers{
		Products:      controllers.NewProductController(productService, cache),
		AdminProducts: controllers.NewAdminProductController(productService, cache),
		Categories:    controllers.NewCategoryController(categoryService),
		Brands:        controllers.NewBrandController(brandService),
		Auth:          controllers.NewAuthController(authService),
		Orders:        controllers.NewOrderController(orderService),
		Admin:         controllers.NewAdminController(uploadService, dashboardService),
	}

	// --- 3. HTTP Server & Middleware ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- 4. Route Registration ---

	routes.Register(r, ctrl, tokens, cfg.UploadDir)

	// --- 5. Graceful Shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Beauty Bloom API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	zap.L().Info("Server stopped gracefully")
}
