package synth_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finance-dashboard/internal/domain/synth"
)

func TestGenerate_EsDeterministico(t *testing.T) {
	a := synth.Generate(synth.DefaultSeed)
	b := synth.Generate(synth.DefaultSeed)

	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		ra, rb := a.At(i), b.At(i)
		assert.True(t, ra.Date.Equal(rb.Date), "fila %d: fecha", i)
		assert.Equal(t, ra.Customer, rb.Customer, "fila %d: cliente", i)
		assert.True(t, ra.InvoiceAmount.Equal(rb.InvoiceAmount), "fila %d: factura", i)
		assert.True(t, ra.CashPayment.Equal(rb.CashPayment), "fila %d: pago", i)
	}
}

func TestGenerate_SemillaDistintaCambiaMontos(t *testing.T) {
	a := synth.Generate(1)
	b := synth.Generate(2)

	differs := false
	for i := 0; i < a.Len(); i++ {
		if !a.At(i).InvoiceAmount.Equal(b.At(i).InvoiceAmount) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "semillas distintas deben producir montos distintos")
}

func TestGenerate_FormaYOrden(t *testing.T) {
	ds := synth.Generate(synth.DefaultSeed)
	months := synth.Months()
	customers := synth.Customers()

	require.Equal(t, 120, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		assert.True(t, r.Date.Equal(months[i/synth.CustomerCount]), "fila %d: orden mes-mayor", i)
		assert.Equal(t, customers[i%synth.CustomerCount], r.Customer, "fila %d: orden cliente-menor", i)
	}
}

func TestGenerate_CadaClienteTiene12Filas(t *testing.T) {
	ds := synth.Generate(synth.DefaultSeed)

	counts := map[string]int{}
	for _, r := range ds.Records() {
		counts[r.Customer]++
	}
	require.Len(t, counts, synth.CustomerCount)
	for customer, n := range counts {
		assert.Equal(t, synth.MonthCount, n, "cliente %s", customer)
	}
}

func TestGenerate_RangosDeMontos(t *testing.T) {
	low := decimal.NewFromInt(500)
	high := decimal.NewFromInt(3000)
	half := decimal.NewFromFloat(0.5)

	for _, seed := range []uint64{synth.DefaultSeed, 0, 7, 1 << 40} {
		for _, r := range synth.Generate(seed).Records() {
			assert.True(t, r.InvoiceAmount.GreaterThanOrEqual(low), "factura >= 500: %s", r.InvoiceAmount)
			assert.True(t, r.InvoiceAmount.LessThan(high), "factura < 3000: %s", r.InvoiceAmount)
			assert.True(t, r.InvoiceAmount.Equal(r.InvoiceAmount.Truncate(0)), "factura entera: %s", r.InvoiceAmount)

			assert.True(t, r.CashPayment.GreaterThanOrEqual(r.InvoiceAmount.Mul(half)), "pago >= 50%%: %s / %s", r.CashPayment, r.InvoiceAmount)
			assert.True(t, r.CashPayment.LessThan(r.InvoiceAmount), "pago < factura: %s / %s", r.CashPayment, r.InvoiceAmount)
			assert.True(t, r.CashPayment.Equal(r.CashPayment.Round(2)), "pago con 2 decimales: %s", r.CashPayment)
		}
	}
}

func TestMonths_FinesDeMes2023(t *testing.T) {
	months := synth.Months()

	require.Len(t, months, 12)
	assert.Equal(t, time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC), months[0])
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), months[1])
	assert.Equal(t, time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), months[11])
	for i := 1; i < len(months); i++ {
		assert.True(t, months[i].After(months[i-1]))
	}
}

func TestCustomers_Etiquetas(t *testing.T) {
	customers := synth.Customers()

	require.Len(t, customers, 10)
	assert.Equal(t, "Customer 1", customers[0])
	assert.Equal(t, "Customer 10", customers[9])
}
