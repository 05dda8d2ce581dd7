package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/finance-dashboard/internal/interfaces/http"
)

func TestRateLimiter_AgotaRafaga(t *testing.T) {
	app := fiber.New()
	// rps mínimo: la ráfaga no se repone durante el test
	app.Use(apphttp.NewRateLimiter(0.001, 2).Handler())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		assert.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, codes)
}
