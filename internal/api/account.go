package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact amounts

	"user_ledger/internal/domain" // Domain models
)

// Accounts is the account service as seen by the HTTP handlers
type Accounts interface {
	Create(name, email, password string) (*domain.User, error)
	ReadAll() []domain.User
	ReadAllAt() ([]domain.User, string)
	Revision() string
	Get(id int) (*domain.User, error)
	Update(id int, upd domain.UserUpdate) (*domain.User, error)
	Delete(id int) (bool, error)
	Deposit(id int, amount decimal.Decimal) (*domain.User, error)
	Withdraw(id int, amount decimal.Decimal) (*domain.User, error)
	Transactions(id int) ([]domain.Transaction, error)
}

// UpdateRequest carries optional identity fields; absent fields are kept
type UpdateRequest struct {
	Name     *string `json:"name"`     // New name
	Email    *string `json:"email"`    // New email
	Password *string `json:"password"` // New password
}

// AmountRequest represents a deposit or withdrawal request
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"` // Amount to move, must be positive
}

// GetMeHandler returns the authenticated user
func GetMeHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c) // Get userID from context
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := accounts.Get(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

// UpdateMeHandler replaces the identity fields present in the request
func UpdateMeHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		updateUser(c, accounts, userID)
	}
}

// DeleteMeHandler removes the authenticated user's account
func DeleteMeHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		deleteUser(c, accounts, userID)
	}
}

// DepositHandler adds money to the authenticated user's balance
func DepositHandler(accounts Accounts, metrics *Metrics) gin.HandlerFunc {
	return moveMoney(accounts.Deposit, domain.Deposit, metrics)
}

// WithdrawHandler takes money from the authenticated user's balance
func WithdrawHandler(accounts Accounts, metrics *Metrics) gin.HandlerFunc {
	return moveMoney(accounts.Withdraw, domain.Withdrawal, metrics)
}

func moveMoney(apply func(int, decimal.Decimal) (*domain.User, error), typ domain.TransactionType, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AmountRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		user, err := apply(userID, req.Amount)
		if err != nil {
			metrics.recordTransaction(string(typ), "rejected")
			respondError(c, err)
			return
		}
		metrics.recordTransaction(string(typ), "ok")
		c.JSON(http.StatusOK, gin.H{"message": string(typ) + " successful", "balance": user.Balance})
	}
}

// TransactionHistoryHandler returns the authenticated user's ledger, oldest first
func TransactionHistoryHandler(accounts Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := currentUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		txs, err := accounts.Transactions(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": txs, "total": len(txs)})
	}
}

func updateUser(c *gin.Context, accounts Accounts, userID int) {
	var req UpdateRequest // Bind JSON request to struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	user, err := accounts.Update(userID, domain.UserUpdate{Name: req.Name, Email: req.Email, Password: req.Password})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

func deleteUser(c *gin.Context, accounts Accounts, userID int) {
	deleted, err := accounts.Delete(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		respondError(c, domain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
