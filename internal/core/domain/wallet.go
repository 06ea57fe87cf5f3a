package domain

import "github.com/shopspring/decimal"

// Wallet is the single per-session wallet shown on the dashboard.
// Balance is mutated only by successful debit/credit operations and
// must never go negative as a result of a simulated send.
type Wallet struct {
	Balance      decimal.Decimal `json:"balance"`
	Currency     string          `json:"currency"`
	CardLastFour string          `json:"cardLastFour"` // display only
	Owner        string          `json:"owner"`
}

// CanDebit reports whether debiting amount keeps the balance non-negative.
func (w Wallet) CanDebit(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.LessThanOrEqual(w.Balance)
}
