package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeedWallet returns the fixed wallet used when no persisted state exists.
func SeedWallet() Wallet {
	return Wallet{
		Balance:      decimal.RequireFromString("12450.75"),
		Currency:     "USD",
		CardLastFour: "8842",
		Owner:        "Alex Rivera",
	}
}

// SeedTransactions returns the fixed starter history, newest first.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Direction: DirectionOutgoing, Amount: decimal.RequireFromString("45.00"), Recipient: "Starbucks Coffee", Category: CategoryFood, Date: mustTime("2023-10-24T10:30:00Z")},
		{ID: "2", Direction: DirectionIncoming, Amount: decimal.RequireFromString("2500.00"), Recipient: "Stripe Payout", Category: CategoryIncome, Date: mustTime("2023-10-23T09:00:00Z")},
		{ID: "3", Direction: DirectionOutgoing, Amount: decimal.RequireFromString("120.50"), Recipient: "Amazon Services", Category: CategoryShopping, Date: mustTime("2023-10-22T15:45:00Z")},
		{ID: "4", Direction: DirectionOutgoing, Amount: decimal.RequireFromString("15.99"), Recipient: "Netflix Premium", Category: CategoryEntertainment, Date: mustTime("2023-10-21T00:00:00Z")},
		{ID: "5", Direction: DirectionOutgoing, Amount: decimal.RequireFromString("200.00"), Recipient: "Shell Gas Station", Category: CategoryTransport, Date: mustTime("2023-10-20T18:20:00Z")},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
