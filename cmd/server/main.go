package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"shopperks/internal/config"
	"shopperks/internal/handlers"
	"shopperks/internal/middleware"
	"shopperks/internal/repositories/mongodb"
	"shopperks/internal/services"
	"shopperks/pkg/cache"
	"shopperks/pkg/database"
	"shopperks/pkg/logger"
	"shopperks/pkg/sms"
	"shopperks/pkg/storage"
	"shopperks/pkg/websocket"
	"shopperks/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage provider")
	}

	smsProvider, err := newSMSProvider(cfg.SMS)
	if err != nil {
		log.WithError(err).Warn("SMS provider unavailable, notifications disabled")
		smsProvider = nil
	}

	wsHandler := websocket.NewHandler(websocket.Options{
		ReadBufferSize:    cfg.WebSocket.ReadBufferSize,
		WriteBufferSize:   cfg.WebSocket.WriteBufferSize,
		HandshakeTimeout:  cfg.WebSocket.HandshakeTimeout,
		PingInterval:      cfg.WebSocket.PingInterval,
		PongTimeout:       cfg.WebSocket.PongTimeout,
		EnableCompression: cfg.WebSocket.EnableCompression,
		AllowedOrigins:    cfg.WebSocket.AllowedOrigins,
	})

	// Repositories
	transactionRepo := mongodb.NewTransactionRepository(db.Database)
	customerRepo := mongodb.NewCustomerRepository(db.Database)
	campaignRepo := mongodb.NewCampaignRepository(db.Database)
	couponRepo := mongodb.NewCouponRepository(db.Database)
	shopRepo := mongodb.NewShopRepository(db.Database)
	runner := mongodb.NewSessionRunner(db)

	// Services
	cacheService := services.NewCacheService(redisCache, log)
	transactionService := services.NewTransactionService(transactionRepo, customerRepo, campaignRepo, runner, smsProvider, wsHandler, log)
	customerService := services.NewCustomerService(customerRepo, cacheService, log)
	campaignService := services.NewCampaignService(campaignRepo, cacheService, log)
	couponService := services.NewCouponService(couponRepo, campaignRepo, transactionService, log)
	pointsService := services.NewPointsService(campaignRepo)
	shopService := services.NewShopService(shopRepo, log)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, pointsService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	couponHandler := handlers.NewCouponHandler(couponService)
	uploadHandler := handlers.NewUploadHandler(storageProvider)
	authHandler := handlers.NewAuthHandler(shopService, customerService, cfg.Security.JWTSecret)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.RateLimitMiddleware(cacheService, cfg.Security.RateLimitPerMinute))

	auth := middleware.AuthRequired(cfg.Security.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, authHandler, auth)
		routes.SetupTransactionRoutes(v1, transactionHandler, auth)
		routes.SetupCustomerRoutes(v1, customerHandler, auth)
		routes.SetupCampaignRoutes(v1, campaignHandler, auth)
		routes.SetupCouponRoutes(v1, couponHandler, auth)
		routes.SetupUploadRoutes(v1, uploadHandler, auth)
		routes.SetupWebSocketRoutes(v1, wsHandler, auth)
	}

	router.GET("/health", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := cacheService.Ping(c.Request.Context()); err != nil {
			status = "degraded"
		}
		c.JSON(code, gin.H{
			"status":  status,
			"version": cfg.App.Version,
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcs":
		return storage.NewGCPStorage(cfg.GCP.ProjectID, cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}

func newSMSProvider(cfg *config.SMSConfig) (sms.SMSProvider, error) {
	switch cfg.Provider {
	case "sns":
		return sms.NewAWSSNSProvider(cfg.AWS.Region)
	case "twilio":
		if cfg.Twilio.AccountSID == "" {
			return nil, fmt.Errorf("twilio credentials not configured")
		}
		return sms.NewTwilioProvider(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber), nil
	default:
		return nil, fmt.Errorf("unknown sms provider %q", cfg.Provider)
	}
}
