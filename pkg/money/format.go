// Package money formatea montos para presentación.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer en inglés: separador de miles "," y decimal ".".
var printer = message.NewPrinter(language.English)

// FormatCurrency devuelve el monto como "$1,234.56" (2 decimales, separador de miles).
// Los negativos se escriben "-$1,234.56".
func FormatCurrency(amount decimal.Decimal) string {
	amount = amount.Round(2)
	if amount.IsNegative() {
		return "-" + FormatCurrency(amount.Neg())
	}
	return printer.Sprintf("$%.2f", amount.InexactFloat64())
}

// FormatAmount igual que FormatCurrency pero sin símbolo, para tablas.
func FormatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}
