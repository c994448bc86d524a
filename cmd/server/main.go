package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goshop/catalog-service/config"
	"github.com/goshop/catalog-service/internal/auth"
	catH "github.com/goshop/catalog-service/internal/category/handler"
	catRepoPkg "github.com/goshop/catalog-service/internal/category/repository"
	catUCPkg "github.com/goshop/catalog-service/internal/category/usecase"
	subH "github.com/goshop/catalog-service/internal/subcategory/handler"
	subRepoPkg "github.com/goshop/catalog-service/internal/subcategory/repository"
	subUCPkg "github.com/goshop/catalog-service/internal/subcategory/usecase"
	"github.com/goshop/catalog-service/pkg/cache"
	"github.com/goshop/catalog-service/pkg/db"
	"github.com/goshop/catalog-service/pkg/logger"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.New(cfg)
	defer appLogger.Sync()

	// 3. Connect to Database
	database, err := db.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer database.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		appLogger.Warn("Could not connect to Redis, list caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(database)
	subRepo := subRepoPkg.NewPGRepository(database)

	// 6. Initialize UseCases
	listTTL := time.Duration(cfg.Cache.CategoryListTTL) * time.Second
	catUC := catUCPkg.NewCategoryUseCase(catRepo, redisClient, listTTL, appLogger)
	subUC := subUCPkg.NewSubCategoryUseCase(subRepo, catRepo, appLogger)

	// 7. Initialize Handlers
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	subHandler := subH.NewSubCategoryHandler(subUC, appLogger)

	// 8. Router
	if cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")

	// Reads are public, mutations require a valid token; the workflows
	// enforce the ADMIN role on top of that.
	api.GET("/categories", catHandler.List)
	api.GET("/categories/:id", catHandler.Get)
	api.GET("/subcategories", subHandler.List)
	api.GET("/subcategories/:id", subHandler.Get)

	admin := api.Group("", auth.Middleware(cfg.JWT.SecretKey))
	{
		admin.POST("/categories", catHandler.Upsert)
		admin.DELETE("/categories/:id", catHandler.Delete)
		admin.POST("/subcategories", subHandler.Upsert)
		admin.DELETE("/subcategories/:id", subHandler.Delete)
	}

	// 9. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
