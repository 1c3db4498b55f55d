package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBalanceOf(t *testing.T) {
	txs := []Transaction{
		{ID: 1, Type: Deposit, Amount: decimal.NewFromInt(50)},
		{ID: 2, Type: Withdrawal, Amount: decimal.NewFromInt(20)},
		{ID: 3, Type: Deposit, Amount: decimal.RequireFromString("0.10")},
	}
	assert.True(t, decimal.RequireFromString("30.10").Equal(BalanceOf(txs)))
	assert.True(t, decimal.Zero.Equal(BalanceOf(nil)))
}

func TestCanWithdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    error
	}{
		{"exact balance", "30", "30", nil},
		{"less than balance", "30", "0.01", nil},
		{"more than balance", "30", "1000", ErrInsufficientFunds},
		{"zero amount", "30", "0", ErrInvalidAmount},
		{"negative amount", "30", "-5", ErrInvalidAmount},
		{"huge exponent", "30", "1e50000000", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanWithdraw(decimal.RequireFromString(tt.balance), decimal.RequireFromString(tt.amount))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCheckAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   error
	}{
		{"0.01", nil},
		{"1.50000000", nil},
		{"0.100000000000", nil},
		{"0.00000001", nil},
		{"999999999999.99999999", nil},
		{"0", ErrInvalidAmount},
		{"-1", ErrInvalidAmount},
		{"0.000000001", ErrInvalidAmount},
		{"1000000000000", ErrInvalidAmount},
		{"1e13", ErrInvalidAmount},
		{"1e50000000", ErrInvalidAmount},
		{"1e-50000000", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.ErrorIs(t, CheckAmount(decimal.RequireFromString(tt.amount)), tt.want)
		})
	}
}

func TestUserUpdateApply(t *testing.T) {
	u := User{Name: "Alice", Email: "a@x.com", Password: "p1"}
	name := "Alicia"
	empty := ""
	UserUpdate{Name: &name, Password: &empty}.Apply(&u)
	assert.Equal(t, "Alicia", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "", u.Password)
}
