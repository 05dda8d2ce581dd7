package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record representa una fila del dataset: la facturación de un cliente en un mes.
type Record struct {
	Date          time.Time       // fin de mes (UTC)
	Customer      string          // "Customer 1" … "Customer 10"
	InvoiceAmount decimal.Decimal // monto facturado, entero en [500, 3000)
	CashPayment   decimal.Decimal // pago recibido, InvoiceAmount × fracción en [0.5, 1.0)
}
