package order

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyTag prefixes every amount shown to customers.
const CurrencyTag = "RD$"

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a whole-peso amount with thousands separators,
// e.g. 1250 -> "RD$ 1,250". Fractions are rounded away.
func FormatAmount(amount float64) string {
	return amountPrinter.Sprintf("%s %d", CurrencyTag, int64(math.Round(amount)))
}
