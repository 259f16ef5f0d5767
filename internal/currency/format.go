package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Prices are plain rupee amounts everywhere in the core; formatting happens
// only at the presentation boundary, with en-IN digit grouping.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as an Indian Rupee display string with two
// decimal places, e.g. "₹1,50,000.00".
func FormatINR(amount float64) string {
	return printer.Sprintf("₹%.2f", amount)
}
