package tui

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatAmount renders a major-unit amount in currency. Unknown currencies
// fall back to the plain number.
func formatAmount(amount *float64, currency string) string {
	if amount == nil {
		return "-"
	}

	value := decimal.NewFromFloat(*amount)
	cur := money.GetCurrency(currency)
	if cur == nil {
		return value.StringFixed(0)
	}

	minor := value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
