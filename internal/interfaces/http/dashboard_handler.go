package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finance-dashboard/internal/application/analytics"
	"github.com/jhoicas/finance-dashboard/internal/application/dto"
)

// DashboardHandler endpoints JSON del dashboard.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Modelo de vista del dashboard
// @Description  KPIs, series por mes, top de clientes y tabla de detalle para la selección indicada.
// @Description  Sin parámetros se seleccionan todos los clientes; applied=1 sin customer es una selección vacía.
// @Tags         dashboard
// @Produce      json
// @Param        customer  query  []string  false  "Cliente a incluir (repetible)"  collectionFormat(multi)
// @Param        applied   query  string    false  "1 si la selección fue enviada explícitamente"
// @Success      200  {object}  dto.DashboardViewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	view, err := h.uc.Render(c.Context(), dashboardRequestFromQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// Render godoc
// @Summary      Modelo de vista del dashboard (selección en el cuerpo)
// @Description  customers omitido o null = todos los clientes; [] = ninguno.
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DashboardRequest  true  "Selección de clientes"
// @Success      200  {object}  dto.DashboardViewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/render [post]
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}

	view, err := h.uc.Render(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

// Customers GET /api/dashboard/customers — opciones del selector.
func (h *DashboardHandler) Customers(c *fiber.Ctx) error {
	opts, err := h.uc.Customers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(opts)
}
