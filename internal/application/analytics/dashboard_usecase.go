// Package analytics contiene el pipeline del Dashboard Financiero:
// selección de clientes → vista filtrada → agregaciones → modelo de vista.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/finance-dashboard/internal/application/dto"
	"github.com/jhoicas/finance-dashboard/internal/domain/repository"
	"github.com/jhoicas/finance-dashboard/pkg/money"
)

const (
	DashboardTitle      = "📊 Financial Dashboard"
	DefaultTopCustomers = 5 // porciones del gráfico de torta
)

// DashboardUseCase construye el modelo de vista del dashboard.
//
// Cada llamada a Render ejecuta el pipeline completo sobre un dataset recién cargado;
// no hay recálculo incremental ni estado compartido entre llamadas.
type DashboardUseCase struct {
	datasets repository.DatasetRepository
	topN     int
}

// NewDashboardUseCase construye el caso de uso. topN <= 0 usa DefaultTopCustomers.
func NewDashboardUseCase(datasets repository.DatasetRepository, topN int) *DashboardUseCase {
	if topN <= 0 {
		topN = DefaultTopCustomers
	}
	return &DashboardUseCase{datasets: datasets, topN: topN}
}

// Customers devuelve las opciones del selector de clientes.
func (uc *DashboardUseCase) Customers(ctx context.Context) (*dto.CustomerOptionsDTO, error) {
	ds, err := uc.datasets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar dataset: %w", err)
	}
	return &dto.CustomerOptionsDTO{Customers: Options(ds)}, nil
}

// Render ejecuta Synthesizer → Selector → Agregación y arma el DashboardViewDTO.
//
// Errores:
//   - domain.ErrUnknownCustomer si req.Customers contiene un cliente fuera de las opciones.
//   - error del repositorio envuelto.
func (uc *DashboardUseCase) Render(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardViewDTO, error) {
	ds, err := uc.datasets.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: cargar dataset: %w", err)
	}

	sel := AllSelected(ds)
	if req.Customers != nil {
		sel, err = NewSelection(ds, req.Customers)
		if err != nil {
			return nil, fmt.Errorf("dashboard: selección: %w", err)
		}
	}
	rows := Apply(ds, sel)

	// ── KPIs ──────────────────────────────────────────────────────────────────
	totalInvoice := TotalInvoice(rows).Round(2)
	totalCash := TotalCash(rows).Round(2)

	return &dto.DashboardViewDTO{
		Title:    DashboardTitle,
		Options:  Options(ds),
		Selected: sel.Labels(),
		KPIs: dto.KPIsDTO{
			TotalInvoice:      totalInvoice,
			TotalCash:         totalCash,
			TotalInvoiceLabel: money.FormatCurrency(totalInvoice),
			TotalCashLabel:    money.FormatCurrency(totalCash),
			CollectionRate:    CollectionRate(totalInvoice, totalCash),
		},
		InvoiceByMonth: toMonthDTOs(InvoiceByMonth(rows)),
		CashByMonth:    toMonthDTOs(CashByMonth(rows)),
		TopCustomers:   toCustomerDTOs(TopCustomers(rows, uc.topN)),
		Rows:           toRowDTOs(DetailRows(rows)),
	}, nil
}

func toMonthDTOs(in []MonthAmount) []dto.MonthAmountDTO {
	out := make([]dto.MonthAmountDTO, 0, len(in))
	for _, m := range in {
		out = append(out, dto.MonthAmountDTO{Date: m.Month, Amount: m.Amount.Round(2)})
	}
	return out
}

func toCustomerDTOs(in []CustomerAmount) []dto.CustomerAmountDTO {
	out := make([]dto.CustomerAmountDTO, 0, len(in))
	for i, c := range in {
		out = append(out, dto.CustomerAmountDTO{Rank: i + 1, Customer: c.Customer, Amount: c.Amount.Round(2)})
	}
	return out
}

func toRowDTOs(in []DetailRow) []dto.DetailRowDTO {
	out := make([]dto.DetailRowDTO, 0, len(in))
	for _, r := range in {
		out = append(out, dto.DetailRowDTO{
			Index:         r.Index,
			Date:          r.Date,
			Customer:      r.Customer,
			InvoiceAmount: r.InvoiceAmount,
			CashPayment:   r.CashPayment,
		})
	}
	return out
}
