// Package money provides the minor-currency-unit representation used across
// the pricing and entitlement engine. All monetary amounts are integral cents;
// conversion to major units happens only at presentation time via Format.
package money

import "fmt"

// Cents is a monetary amount in minor currency units. It is signed: pricing
// deliberately lets negative usage counts flow through arithmetic, which can
// produce negative amounts.
type Cents int64

// Format formats the amount for display based on currency code.
// For example, 1000 renders as $10.00, €10,00, etc.
func Format(amount Cents, currency string) string {
	negative := amount < 0
	abs := amount
	if negative {
		abs = -abs
	}
	major := abs / 100
	minor := abs % 100

	currencyFormats := map[string]struct {
		symbol    string
		separator string
		position  string // "before" or "after"
	}{
		"EUR": {symbol: "€", separator: ",", position: "before"},
		"USD": {symbol: "$", separator: ".", position: "before"},
		"GBP": {symbol: "£", separator: ".", position: "before"},
	}

	format, exists := currencyFormats[currency]
	if !exists {
		return fmt.Sprintf("%s %.2f", currency, float64(amount)/100.0)
	}

	priceStr := fmt.Sprintf("%d%s%02d", major, format.separator, minor)
	if negative {
		priceStr = "-" + priceStr
	}

	if format.position == "before" {
		return fmt.Sprintf("%s%s", format.symbol, priceStr)
	}
	return fmt.Sprintf("%s%s", priceStr, format.symbol)
}
