package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/panelhub/user-service/internal/api/metrics"
	"github.com/panelhub/user-service/internal/core/ports"
)

// DemoHandler handles HTTP requests for demo account provisioning.
type DemoHandler struct {
	service ports.DemoService
}

func NewDemoHandler(service ports.DemoService) *DemoHandler {
	return &DemoHandler{service: service}
}

// Seed handles POST /v1/demo/seed.
//
// @Summary      Ensure the three demo accounts exist
// @Tags         demo
// @Produce      json
// @Success      200  {array}   domain.SafeUser
// @Failure      500  {object}  errorResponse
// @Router       /v1/demo/seed [post]
func (h *DemoHandler) Seed(c echo.Context) error {
	seeded, err := h.service.SeedDemoUsers(c.Request().Context())
	if err != nil {
		metrics.DemoSeedRunsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.DemoSeedRunsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, seeded)
}

// List handles GET /v1/demo/users.
//
// @Summary      List the demo credentials shown on the login form
// @Tags         demo
// @Produce      json
// @Success      200  {array}  domain.DemoSpec
// @Router       /v1/demo/users [get]
func (h *DemoHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.DemoUsers())
}
