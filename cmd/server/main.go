package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rescue-site-server/internal/bootstrap"
	"rescue-site-server/internal/config"
	"rescue-site-server/internal/database"
	"rescue-site-server/internal/docs"
	"rescue-site-server/internal/handler"
	"rescue-site-server/internal/logger"
	"rescue-site-server/internal/middleware"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../internal/docs

// @title Rescue Site Generation API
// @version 1.0
// @description Генерация сайтов приютов: структура страниц и текст секций.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer JWT, выпускается командой sitegen token
func main() {
	// --- Configuration ---
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Configuration loaded", cfg.LogFields()...)

	// --- External Connections + DI ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := bootstrap.NewServices(ctx, cfg, bootstrap.ServerRetryPolicy, log)
	if err != nil {
		zap.L().Fatal("Failed to initialize services", zap.Error(err))
	}
	defer func() {
		if err := services.Close(); err != nil {
			zap.L().Error("Error closing connections", zap.Error(err))
		}
	}()

	if err := database.NewMigrator(services.Pool).Up(); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.ZapLoggingMiddleware(log))
	router.Use(gin.Recovery())

	p := ginprometheus.NewPrometheus("gin")

	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	// Генерация дорогая: лимитируем /ai/* по IP
	var rateLimitStore rateli.Store
	if services.Redis != nil {
		rateLimitStore = rateli.RedisStore(&rateli.RedisOptions{
			RedisClient: services.Redis,
			Rate:        time.Minute,
			Limit:       uint(cfg.RateLimitPerMinute),
		})
	} else {
		rateLimitStore = rateli.InMemoryStore(&rateli.InMemoryOptions{
			Rate:  time.Minute,
			Limit: uint(cfg.RateLimitPerMinute),
		})
	}
	rateLimitMiddleware := rateli.RateLimiter(rateLimitStore, &rateli.Options{
		ErrorHandler: func(c *gin.Context, info rateli.Info) {
			zap.L().Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Too many requests. Try again in " + time.Until(info.ResetTime).Round(time.Second).String(),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})

	var authMiddleware gin.HandlerFunc
	if cfg.AuthEnabled {
		authMiddleware = middleware.JWTAuth(cfg.JWTSecret, log)
	} else {
		zap.L().Warn("Authentication is disabled for /ai routes")
	}
	aiMiddlewares := aiRouteMiddlewares(authMiddleware, rateLimitMiddleware)

	aiHandler := handler.NewAIHandler(services.SiteGeneration, log)
	aiHandler.RegisterRoutes(router, aiMiddlewares...)

	p.Use(router)

	// --- Start HTTP Server ---
	// WriteTimeout ограничен TTL блокировки: дольше генерация все равно не держит тенанта
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.GenerationLockTTL,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}

// aiRouteMiddlewares ставит авторизацию перед лимитером: запросы без токена
// не расходуют лимит. auth == nil, если авторизация выключена.
func aiRouteMiddlewares(auth, rateLimit gin.HandlerFunc) []gin.HandlerFunc {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if auth != nil {
		middlewares = append(middlewares, auth)
	}
	return append(middlewares, rateLimit)
}
