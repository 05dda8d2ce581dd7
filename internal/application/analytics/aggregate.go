package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// MonthAmount suma de un campo monetario en un mes.
type MonthAmount struct {
	Month  time.Time
	Amount decimal.Decimal
}

// CustomerAmount suma facturada de un cliente.
type CustomerAmount struct {
	Customer string
	Amount   decimal.Decimal
}

// DetailRow fila de la tabla con su índice reasignado (0-based, contiguo).
type DetailRow struct {
	Index int
	entity.Record
}

func invoiceOf(r entity.Record) decimal.Decimal { return r.InvoiceAmount }
func cashOf(r entity.Record) decimal.Decimal    { return r.CashPayment }

// TotalInvoice suma de InvoiceAmount. Vista vacía ⇒ 0.
func TotalInvoice(rows []entity.Record) decimal.Decimal { return sum(rows, invoiceOf) }

// TotalCash suma de CashPayment. Vista vacía ⇒ 0.
func TotalCash(rows []entity.Record) decimal.Decimal { return sum(rows, cashOf) }

func sum(rows []entity.Record, field func(entity.Record) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(field(r))
	}
	return total
}

// InvoiceByMonth agrupa por fecha y suma InvoiceAmount, orden ascendente por fecha.
func InvoiceByMonth(rows []entity.Record) []MonthAmount { return byMonth(rows, invoiceOf) }

// CashByMonth agrupa por fecha y suma CashPayment, orden ascendente por fecha.
func CashByMonth(rows []entity.Record) []MonthAmount { return byMonth(rows, cashOf) }

func byMonth(rows []entity.Record, field func(entity.Record) decimal.Decimal) []MonthAmount {
	index := make(map[int64]int)
	out := make([]MonthAmount, 0)
	for _, r := range rows {
		key := r.Date.UnixNano()
		if i, ok := index[key]; ok {
			out[i].Amount = out[i].Amount.Add(field(r))
			continue
		}
		index[key] = len(out)
		out = append(out, MonthAmount{Month: r.Date, Amount: field(r)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// TopCustomers agrupa por cliente, suma InvoiceAmount y devuelve los n mayores
// en orden descendente. Los empates conservan el orden de primera aparición
// en la vista filtrada. Longitud = min(n, clientes distintos).
func TopCustomers(rows []entity.Record, n int) []CustomerAmount {
	if n <= 0 {
		return []CustomerAmount{}
	}

	index := make(map[string]int)
	groups := make([]CustomerAmount, 0)
	for _, r := range rows {
		if i, ok := index[r.Customer]; ok {
			groups[i].Amount = groups[i].Amount.Add(r.InvoiceAmount)
			continue
		}
		index[r.Customer] = len(groups)
		groups = append(groups, CustomerAmount{Customer: r.Customer, Amount: r.InvoiceAmount})
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Amount.GreaterThan(groups[j].Amount) })
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// DetailRows ordena la vista por fecha descendente (estable: dentro de un mes se
// mantiene el orden de clientes) y reasigna el índice 0..n-1. No modifica rows.
func DetailRows(rows []entity.Record) []DetailRow {
	sorted := make([]entity.Record, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	out := make([]DetailRow, len(sorted))
	for i, r := range sorted {
		out[i] = DetailRow{Index: i, Record: r}
	}
	return out
}

// CollectionRate porcentaje cobrado: cash / invoice * 100, 2 decimales. Factura 0 ⇒ 0.
func CollectionRate(invoice, cash decimal.Decimal) decimal.Decimal {
	if !invoice.IsPositive() {
		return decimal.Zero
	}
	return cash.Div(invoice).Mul(hundred).Round(2)
}
