package domain

import "github.com/shopspring/decimal"

// BalanceOf replays a ledger from zero. Deposits add, withdrawals subtract.
func BalanceOf(txs []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range txs {
		switch t.Type {
		case Deposit:
			balance = balance.Add(t.Amount)
		case Withdrawal:
			balance = balance.Sub(t.Amount)
		}
	}
	return balance
}

const (
	AmountScale     = 8  // Fractional digits kept for amounts, as in decimal(20,8)
	maxAmountDigits = 12 // Integer digits allowed for one amount
)

// MaxAmount is the largest amount a single transaction may move
var MaxAmount = decimal.New(1, maxAmountDigits).Sub(decimal.New(1, -AmountScale))

// CheckAmount accepts positive amounts with at most AmountScale fractional
// digits that do not exceed MaxAmount. The exponent is checked first so that
// inputs such as 1e50000000 are rejected without being rescaled.
func CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	exp := amount.Exponent()
	if exp > maxAmountDigits || exp < -4*AmountScale {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) || amount.GreaterThan(MaxAmount) {
		return ErrInvalidAmount
	}
	return nil
}

// CanWithdraw reports whether amount may be taken from balance
func CanWithdraw(balance, amount decimal.Decimal) error {
	if err := CheckAmount(amount); err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}
