package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a whole-unit amount prefixed with the currency symbol
// and grouped thousands, e.g. FormatAmount(CurrencyUSD, 2598) == "$2,598".
func FormatAmount(c CurrencyCode, amount int64) string {
	return c.Symbol() + printer.Sprintf("%d", amount)
}
