package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DraftPayment is a pre-filled, unconfirmed payment form state, produced
// either by direct user input or by an assistant tool invocation.
type DraftPayment struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Category  Category        `json:"category"`
	Note      string          `json:"note,omitempty"`
}

// ParseDraftPayment validates and coerces untyped draftPayment tool-call
// arguments into a DraftPayment. Malformed payloads are rejected rather
// than forwarded: recipient must be a non-empty string and amount a
// positive number. An unknown category falls back to DefaultCategory.
func ParseDraftPayment(args map[string]interface{}) (DraftPayment, error) {
	recipient, ok := args["recipient"].(string)
	if !ok || strings.TrimSpace(recipient) == "" {
		return DraftPayment{}, fmt.Errorf("draft payment: missing or empty recipient")
	}

	amount, err := coerceAmount(args["amount"])
	if err != nil {
		return DraftPayment{}, fmt.Errorf("draft payment: %w", err)
	}
	if !amount.IsPositive() {
		return DraftPayment{}, fmt.Errorf("draft payment: amount must be positive, got %s", amount)
	}

	category := DefaultCategory
	if raw, ok := args["category"].(string); ok {
		category = ParseCategory(raw)
	}

	return DraftPayment{
		Recipient: strings.TrimSpace(recipient),
		Amount:    amount,
		Category:  category,
	}, nil
}

// coerceAmount accepts the number shapes a JSON decoder may produce.
func coerceAmount(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	case nil:
		return decimal.Decimal{}, fmt.Errorf("missing amount")
	default:
		return decimal.Decimal{}, fmt.Errorf("amount has unsupported type %T", v)
	}
}
