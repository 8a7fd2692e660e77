package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Korean)

// FormatWon formats an amount in won with digit grouping, e.g. 3000 -> "3,000원".
func FormatWon(amount int64) string {
	return printer.Sprintf("%d원", amount)
}
