package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction represents the kind of money movement relative to the wallet.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Category is the fixed spending category set shown in the dashboard.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryIncome        Category = "Income"
	CategoryOthers        Category = "Others"
)

// DefaultCategory is used when input carries no (or an unknown) category.
const DefaultCategory = CategoryShopping

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryShopping, CategoryEntertainment,
		CategoryTransport, CategoryUtilities, CategoryIncome, CategoryOthers,
	}
}

// ParseCategory coerces free-form input into a valid Category,
// falling back to DefaultCategory for unknown values.
func ParseCategory(s string) Category {
	for _, c := range Categories() {
		if string(c) == s {
			return c
		}
	}
	return DefaultCategory
}

// Transaction is an immutable record of simulated money movement.
// JSON field names stay compatible with the persisted snapshot format.
type Transaction struct {
	ID        string          `json:"id"`
	Direction Direction       `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Recipient string          `json:"recipient"`
	Category  Category        `json:"category"`
	Date      time.Time       `json:"date"`
	Note      string          `json:"note,omitempty"`
}
