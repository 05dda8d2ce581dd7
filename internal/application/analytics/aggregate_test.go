package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/domain/entity"
)

func TestTotales_VistaVaciaEsCero(t *testing.T) {
	assert.True(t, analytics.TotalInvoice(nil).IsZero())
	assert.True(t, analytics.TotalCash([]entity.Record{}).IsZero())
	assert.Empty(t, analytics.InvoiceByMonth(nil))
	assert.Empty(t, analytics.CashByMonth(nil))
	assert.Empty(t, analytics.TopCustomers(nil, 5))
	assert.Empty(t, analytics.DetailRows(nil))
}

func TestTotalInvoice_IgualASumaPorMes(t *testing.T) {
	rows := analytics.Apply(fullDataset(), analytics.AllSelected(fullDataset()))

	byMonth := analytics.InvoiceByMonth(rows)
	require.Len(t, byMonth, 12)

	sum := decimal.Zero
	for _, m := range byMonth {
		sum = sum.Add(m.Amount)
	}
	assert.True(t, analytics.TotalInvoice(rows).Equal(sum), "KPI %s != Σ meses %s", analytics.TotalInvoice(rows), sum)

	cashSum := decimal.Zero
	for _, m := range analytics.CashByMonth(rows) {
		cashSum = cashSum.Add(m.Amount)
	}
	assert.True(t, analytics.TotalCash(rows).Equal(cashSum))
}

func TestByMonth_AgrupaYOrdenaAscendente(t *testing.T) {
	rows := []entity.Record{
		rec(time.March, "A", "100", "60"),
		rec(time.January, "A", "10", "6"),
		rec(time.March, "B", "200", "150"),
		rec(time.January, "B", "20", "11"),
	}

	inv := analytics.InvoiceByMonth(rows)
	require.Len(t, inv, 2)
	assert.Equal(t, month(time.January), inv[0].Month)
	assert.Equal(t, "30", inv[0].Amount.String())
	assert.Equal(t, month(time.March), inv[1].Month)
	assert.Equal(t, "300", inv[1].Amount.String())

	cash := analytics.CashByMonth(rows)
	require.Len(t, cash, 2)
	assert.Equal(t, "17", cash[0].Amount.String())
	assert.Equal(t, "210", cash[1].Amount.String())
}

func TestTopCustomers_DescendenteYLongitud(t *testing.T) {
	rows := analytics.Apply(fullDataset(), analytics.AllSelected(fullDataset()))

	top := analytics.TopCustomers(rows, 5)
	require.Len(t, top, 5)
	for i := 1; i < len(top); i++ {
		assert.True(t, top[i-1].Amount.GreaterThanOrEqual(top[i].Amount), "orden descendente en %d", i)
	}

	// Ningún cliente fuera del top supera al último del top.
	inTop := map[string]bool{}
	for _, c := range top {
		inTop[c.Customer] = true
	}
	for _, c := range analytics.TopCustomers(rows, 10) {
		if !inTop[c.Customer] {
			assert.True(t, c.Amount.LessThanOrEqual(top[4].Amount))
		}
	}
}

func TestTopCustomers_MenosClientesQueN(t *testing.T) {
	rows := []entity.Record{
		rec(time.January, "A", "100", "60"),
		rec(time.February, "B", "300", "160"),
		rec(time.March, "A", "150", "80"),
	}

	top := analytics.TopCustomers(rows, 5)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Customer)
	assert.Equal(t, "300", top[0].Amount.String())
	assert.Equal(t, "A", top[1].Customer)
	assert.Equal(t, "250", top[1].Amount.String())
}

func TestTopCustomers_EmpatesPorPrimeraAparicion(t *testing.T) {
	rows := []entity.Record{
		rec(time.January, "C", "100", "60"),
		rec(time.January, "A", "100", "60"),
		rec(time.January, "B", "100", "60"),
		rec(time.January, "D", "50", "30"),
	}

	top := analytics.TopCustomers(rows, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "C", top[0].Customer)
	assert.Equal(t, "A", top[1].Customer)
}

func TestTopCustomers_NNoPositivo(t *testing.T) {
	rows := []entity.Record{rec(time.January, "A", "100", "60")}
	assert.Empty(t, analytics.TopCustomers(rows, 0))
}

func TestDetailRows_FechaDescendenteEIndiceReiniciado(t *testing.T) {
	rows := []entity.Record{
		rec(time.January, "A", "1", "1"),
		rec(time.March, "A", "3", "2"),
		rec(time.February, "A", "2", "1"),
	}

	detail := analytics.DetailRows(rows)
	require.Len(t, detail, 3)
	assert.Equal(t, month(time.March), detail[0].Date)
	assert.Equal(t, month(time.February), detail[1].Date)
	assert.Equal(t, month(time.January), detail[2].Date)
	for i, d := range detail {
		assert.Equal(t, i, d.Index)
	}

	// La vista original no se reordena.
	assert.Equal(t, month(time.January), rows[0].Date)
}

func TestDetailRows_EstableDentroDelMes(t *testing.T) {
	rows := analytics.Apply(fullDataset(), analytics.AllSelected(fullDataset()))

	detail := analytics.DetailRows(rows)
	require.Len(t, detail, 120)
	assert.Equal(t, month(time.December), detail[0].Date)
	assert.Equal(t, "Customer 1", detail[0].Customer)
	assert.Equal(t, "Customer 10", detail[9].Customer)
	assert.Equal(t, month(time.January), detail[119].Date)
	for i := 1; i < len(detail); i++ {
		assert.False(t, detail[i].Date.After(detail[i-1].Date), "fila %d fuera de orden", i)
	}
}

func TestCollectionRate(t *testing.T) {
	assert.Equal(t, "75", analytics.CollectionRate(decimal.NewFromInt(200), decimal.NewFromInt(150)).String())
	assert.Equal(t, "33.33", analytics.CollectionRate(decimal.NewFromInt(3), decimal.NewFromInt(1)).String())
	assert.True(t, analytics.CollectionRate(decimal.Zero, decimal.Zero).IsZero())
}
