package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/panelhub/user-service/internal/api/metrics"
	"github.com/panelhub/user-service/internal/core/ports"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /v1/auth/login.
//
// Always answers 200 with the login result object; authentication failure is
// carried in the payload, not the status code, so the web client renders the
// message directly.
//
// @Summary      Authenticate by email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      400   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result := h.service.Login(c.Request().Context(), req.Email, req.Password)
	metrics.LoginAttemptsTotal.WithLabelValues(loginResultLabel(result)).Inc()

	return c.JSON(http.StatusOK, result)
}

func loginResultLabel(res *ports.LoginResult) string {
	switch {
	case res.Success:
		return "success"
	case res.Message == ports.MsgAccountDeactivated:
		return "deactivated"
	case res.Message == ports.MsgLoginServerError:
		return "error"
	default:
		return "invalid_credentials"
	}
}
