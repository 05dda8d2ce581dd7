package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRequest selección de clientes para GET /api/dashboard y POST /api/dashboard/render.
//
// Customers nil (campo omitido o null) aplica la selección por defecto: todos los clientes.
// Un slice vacío ([]) es una selección explícitamente vacía.
type DashboardRequest struct {
	Customers []string `json:"customers"`
}

// DashboardViewDTO modelo de vista completo del dashboard, en el orden en que se presenta.
type DashboardViewDTO struct {
	Title string `json:"title"`

	// Selector lateral
	Options  []string `json:"options"`  // todos los clientes conocidos
	Selected []string `json:"selected"` // selección activa, en el orden de Options

	KPIs KPIsDTO `json:"kpis"`

	InvoiceByMonth []MonthAmountDTO    `json:"invoice_by_month"` // gráfico de línea
	CashByMonth    []MonthAmountDTO    `json:"cash_by_month"`    // gráfico de barras
	TopCustomers   []CustomerAmountDTO `json:"top_customers"`    // gráfico de torta

	// Tabla de detalle: fecha descendente, índice 0..n-1
	Rows []DetailRowDTO `json:"rows"`
}

// KPIsDTO métricas principales sobre la vista filtrada.
type KPIsDTO struct {
	TotalInvoice      decimal.Decimal `json:"total_invoice"`
	TotalCash         decimal.Decimal `json:"total_cash"`
	TotalInvoiceLabel string          `json:"total_invoice_label"` // ej: "$1,234.56"
	TotalCashLabel    string          `json:"total_cash_label"`
	CollectionRate    decimal.Decimal `json:"collection_rate"` // TotalCash / TotalInvoice * 100
}

// MonthAmountDTO suma de un monto en un mes.
type MonthAmountDTO struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// CustomerAmountDTO suma facturada por cliente (Top-N).
type CustomerAmountDTO struct {
	Rank     int             `json:"rank"` // 1 = mayor facturación
	Customer string          `json:"customer"`
	Amount   decimal.Decimal `json:"amount"`
}

// DetailRowDTO fila de la tabla de detalle.
type DetailRowDTO struct {
	Index         int             `json:"index"`
	Date          time.Time       `json:"date"`
	Customer      string          `json:"customer"`
	InvoiceAmount decimal.Decimal `json:"invoice_amount"`
	CashPayment   decimal.Decimal `json:"cash_payment"`
}

// CustomerOptionsDTO respuesta de GET /api/dashboard/customers.
type CustomerOptionsDTO struct {
	Customers []string `json:"customers"`
}
