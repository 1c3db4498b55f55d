package api

import (
	"github.com/gin-gonic/gin"                                // Gin web framework
	"github.com/prometheus/client_golang/prometheus"          // Metrics registry
	"github.com/prometheus/client_golang/prometheus/promhttp" // Metrics endpoint
	"github.com/redis/go-redis/v9"                            // Redis client

	"user_ledger/internal/middleware" // Auth middleware
)

// NewRouter wires every route onto a fresh gin engine. rdb may be nil to disable caching.
func NewRouter(accounts Accounts, gate Gate, rdb *redis.Client) (*gin.Engine, error) {
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Auth routes
	r.POST("/users", RegisterHandler(accounts))                                         // Registration endpoint
	r.POST("/login", LoginHandler(gate, metrics))                                       // User login endpoint
	r.POST("/admin/login", AdminLoginHandler(gate, metrics))                            // Admin login endpoint
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))) // Prometheus scrape endpoint

	// Account routes (protected by JWT)
	me := r.Group("/me")
	me.Use(middleware.JWTAuthMiddleware(gate), middleware.UserOnlyMiddleware())
	me.GET("", GetMeHandler(accounts))                           // Own details
	me.PUT("", UpdateMeHandler(accounts))                        // Update own details
	me.DELETE("", DeleteMeHandler(accounts))                     // Delete own account
	me.POST("/deposit", DepositHandler(accounts, metrics))       // Deposit endpoint
	me.POST("/withdraw", WithdrawHandler(accounts, metrics))     // Withdraw endpoint
	me.GET("/transactions", TransactionHistoryHandler(accounts)) // Transaction history endpoint

	// Admin routes (protected, admin only)
	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(gate), middleware.AdminOnlyMiddleware())
	admin.GET("/users", ListUsersHandler(accounts, rdb))    // List users endpoint
	admin.PUT("/users/:id", UpdateUserHandler(accounts))    // Update any user
	admin.DELETE("/users/:id", DeleteUserHandler(accounts)) // Delete any user

	return r, nil
}
