package utils

import (
	"fmt" // Error formatting

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Hashing modes accepted by NewPasswordHasher
const (
	HashingPlain  = "plain"  // Store and compare passwords as opaque strings
	HashingBcrypt = "bcrypt" // Store bcrypt hashes
)

// PasswordHasher turns passwords into their stored form and checks candidates against it
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Matches(stored, plain string) bool
}

// NewPasswordHasher returns the hasher for mode; empty means plain
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case "", HashingPlain:
		return PlainHasher{}, nil
	case HashingBcrypt:
		return BcryptHasher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", mode)
	}
}

// PlainHasher keeps passwords verbatim and compares them with ==
type PlainHasher struct{}

func (PlainHasher) Hash(plain string) (string, error) { return plain, nil }

func (PlainHasher) Matches(stored, plain string) bool { return stored == plain }

// BcryptHasher stores bcrypt hashes
type BcryptHasher struct {
	Cost int // bcrypt work factor
}

// Hash returns the bcrypt hash of plain
func (h BcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Matches compares plain with a stored bcrypt hash
func (h BcryptHasher) Matches(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
