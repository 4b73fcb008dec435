package cart

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	currencySymbol = "Rp"
	nbsp           = "\u00a0"
)

// FormatPrice renders an amount of Rupiah the way the id-ID locale does:
// "Rp", a no-break space, then the amount grouped with dots and no fraction.
func FormatPrice(amount int64) string {
	sign := ""
	magnitude := uint64(amount)
	if amount < 0 {
		sign = "-"
		magnitude = uint64(-amount)
	}

	p := message.NewPrinter(language.Indonesian)
	return sign + currencySymbol + nbsp + p.Sprintf("%v", number.Decimal(magnitude))
}
