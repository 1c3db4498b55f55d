package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for balances

// User Model
type User struct {
	ID           int             `json:"user_id"`      // Unique, monotonically assigned identifier
	Name         string          `json:"name"`         // Display name
	Email        string          `json:"email"`        // Login email, compared exactly
	Password     string          `json:"-"`            // Plaintext or bcrypt hash, never serialized to clients
	Balance      decimal.Decimal `json:"balance"`      // Current balance, never negative
	Transactions []Transaction   `json:"transactions"` // Ledger entries in creation order
}

// Clone returns a copy of the user that shares no slices with the original
func (u User) Clone() User {
	out := u
	out.Transactions = append([]Transaction(nil), u.Transactions...) // Detach ledger slice
	return out
}

// UserUpdate carries optional replacements for the identity fields.
// A nil field keeps the existing value; a non-nil field replaces it, even when empty.
type UserUpdate struct {
	Name     *string // New name, nil to keep
	Email    *string // New email, nil to keep
	Password *string // New password, nil to keep
}

// Apply writes the present fields onto u
func (p UserUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
}
