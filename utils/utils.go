package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders an AED amount with thousands separators, e.g. "21,068".
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("%.0f", amount)
}

// FormatAmount2 renders an AED amount with two decimals, e.g. "288.59".
func FormatAmount2(amount float64) string {
	return amountPrinter.Sprintf("%.2f", amount)
}
