// Package synth genera el dataset sintético de facturas y pagos.
//
// La generación es una función pura de la semilla: misma semilla, mismo dataset,
// sin estado global. Orden de las filas: mes (exterior) y cliente (interior).
package synth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
)

const (
	DefaultSeed   uint64 = 42
	MonthCount           = 12
	CustomerCount        = 10

	minInvoice = 500  // inclusive
	maxInvoice = 3000 // exclusivo
	firstYear  = 2023
)

var cent = decimal.New(1, -2)

// Months devuelve los 12 fines de mes consecutivos desde enero de 2023.
func Months() []time.Time {
	months := make([]time.Time, 0, MonthCount)
	for i := 1; i <= MonthCount; i++ {
		// Día 0 del mes siguiente = último día del mes i.
		months = append(months, time.Date(firstYear, time.Month(i+1), 0, 0, 0, 0, 0, time.UTC))
	}
	return months
}

// Customers devuelve las etiquetas "Customer 1" … "Customer 10".
func Customers() []string {
	customers := make([]string, 0, CustomerCount)
	for i := 1; i <= CustomerCount; i++ {
		customers = append(customers, fmt.Sprintf("Customer %d", i))
	}
	return customers
}

// Generate produce las 120 filas (12 meses × 10 clientes) a partir de la semilla.
func Generate(seed uint64) entity.Dataset {
	rng := rand.New(rand.NewPCG(seed, seed))
	months := Months()
	customers := Customers()

	records := make([]entity.Record, 0, len(months)*len(customers))
	for _, month := range months {
		for _, customer := range customers {
			invoice := decimal.NewFromInt(int64(minInvoice + rng.IntN(maxInvoice-minInvoice)))
			fraction := 0.5 + rng.Float64()*0.5
			records = append(records, entity.Record{
				Date:          month,
				Customer:      customer,
				InvoiceAmount: invoice.Round(2),
				CashPayment:   cashPayment(invoice, fraction),
			})
		}
	}
	return entity.NewDataset(records)
}

// cashPayment calcula invoice × fraction redondeado a 2 decimales.
// El pago nunca alcanza el monto facturado: si el redondeo lo iguala se descuenta un centavo.
func cashPayment(invoice decimal.Decimal, fraction float64) decimal.Decimal {
	cash := invoice.Mul(decimal.NewFromFloat(fraction)).Round(2)
	if cash.GreaterThanOrEqual(invoice) {
		cash = invoice.Sub(cent)
	}
	return cash
}
