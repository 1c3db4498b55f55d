package domain

import "errors"

var (
	// ErrNotFound indicates no user has the requested id.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidAmount indicates a deposit or withdrawal amount that is not positive.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
	// ErrInsufficientFunds indicates a withdrawal larger than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAuthFailed indicates the credentials matched no user.
	ErrAuthFailed = errors.New("invalid email or password")
)
