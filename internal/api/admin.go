package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact amounts

	"user_ledger/internal/utils" // Cache helpers
)

// UsersCacheKey prefixes the cached admin user list. Entries are keyed by the
// account revision they were built from, so a list read before a mutation is
// never served after it.
const UsersCacheKey = "admin:users"

// UserAdminResponse represents the user data returned to admin
type UserAdminResponse struct {
	ID      int             `json:"user_id"` // User ID
	Name    string          `json:"name"`    // Name
	Email   string          `json:"email"`   // Email
	Balance decimal.Decimal `json:"balance"` // Current balance
}

// ListUsersHandler returns all users in insertion order
func ListUsersHandler(accounts Accounts, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		var cached struct {
			Users []UserAdminResponse `json:"users"` // List of users
			Total int                 `json:"total"` // Total number of users
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, utils.RevisionKey(UsersCacheKey, accounts.Revision()), &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"users": cached.Users, "total": cached.Total, "cached": true})
			return
		}
		users, revision := accounts.ReadAllAt()
		resp := make([]UserAdminResponse, len(users))
		// Map users to response format
		for i, u := range users {
			resp[i] = UserAdminResponse{ID: u.ID, Name: u.Name, Email: u.Email, Balance: u.Balance}
		}
		respData := gin.H{
			"users":  resp,       // List of users
			"total":  len(users), // Total number of users
			"cached": false,      // Indicate response is not from cache
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, utils.RevisionKey(UsersCacheKey, revision), respData, 60*time.Second)
		c.JSON(http.StatusOK, respData)
	}
}

// UpdateUserHandler lets the admin replace identity fields of any user
func UpdateUserHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		updateUser(c, accounts, userID)
	}
}

// DeleteUserHandler lets the admin remove any user
func DeleteUserHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
			return
		}
		deleteUser(c, accounts, userID)
	}
}
