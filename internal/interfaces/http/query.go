package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finance-dashboard/internal/application/dto"
	"github.com/jhoicas/finance-dashboard/internal/domain"
)

// Parámetros de query del selector de clientes.
const (
	queryCustomer = "customer" // repetible: ?customer=Customer+1&customer=Customer+2
	queryApplied  = "applied"  // presente cuando el formulario fue enviado
)

// dashboardRequestFromQuery traduce la query a DashboardRequest.
//
// Sin ningún customer ni applied => Customers nil (selección por defecto: todos).
// Con applied y sin customer => selección vacía.
func dashboardRequestFromQuery(c *fiber.Ctx) dto.DashboardRequest {
	args := c.Context().QueryArgs()
	values := args.PeekMulti(queryCustomer)
	if len(values) == 0 && !args.Has(queryApplied) {
		return dto.DashboardRequest{}
	}

	customers := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(string(v)); s != "" {
			customers = append(customers, s)
		}
	}
	return dto.DashboardRequest{Customers: customers}
}

// writeError traduce errores de la capa de aplicación a dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownCustomer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "UNKNOWN_CUSTOMER", Message: err.Error(),
		})
	case errors.Is(err, errUnknownChart):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
}
