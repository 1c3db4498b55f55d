package main

import (
	"context" // context package is needed for Redis operations
	"os"      // Log output

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging

	"user_ledger/internal/api"     // Custom package for API handlers
	"user_ledger/internal/auth"    // Credential checks and tokens
	"user_ledger/internal/config"  // Custom package for configuration
	"user_ledger/internal/service" // Account service
	"user_ledger/internal/utils"   // Cache invalidation
)

// Main function to set up and run the HTTP facade
func main() {
	cfg := config.LoadConfig()                   // Load configuration
	cfg.SetupLogger(os.Stdout, logrus.InfoLevel) // Setup logger

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	// Setup Redis client when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	accounts, err := service.OpenFromConfig(cfg, service.WithInvalidator(utils.RedisInvalidator{
		Client:   redisClient,                 // Nil when caching is disabled
		Prefixes: []string{api.UsersCacheKey}, // Admin user list
	}))
	if err != nil {
		logrus.Fatalf("failed to load users: %v", err)
	}
	gate := auth.NewGate(cfg.AdminUsername, cfg.AdminPassword, accounts, cfg.JWTSecret)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := api.NewRouter(accounts, gate, redisClient)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
