package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
)

// TransactionType distinguishes deposits from withdrawals
type TransactionType string

const (
	Deposit    TransactionType = "Deposit"    // Money added to the balance
	Withdrawal TransactionType = "Withdrawal" // Money taken from the balance
)

// Transaction Model, immutable once appended to a user's ledger
type Transaction struct {
	ID        int             `json:"transaction_id"`   // Process-wide unique id shared across users
	Type      TransactionType `json:"transaction_type"` // Deposit or Withdrawal
	Amount    decimal.Decimal `json:"amount"`           // Always positive
	Timestamp time.Time       `json:"timestamp"`        // Creation time, rendered as ISO-8601
}
