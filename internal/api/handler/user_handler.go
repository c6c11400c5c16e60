package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/panelhub/user-service/internal/api/metrics"
	"github.com/panelhub/user-service/internal/core/domain"
	"github.com/panelhub/user-service/internal/core/ports"
)

// UserHandler handles HTTP requests for account lifecycle operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/users.
//
// @Summary      Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "New account details"
// @Success      201   {object}  domain.SafeUser
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidRole) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusCreated, user)
}

// List handles GET /v1/users.
//
// @Summary      List users with optional filters
// @Tags         users
// @Produce      json
// @Param        role       query     string  false  "Exact role match"       Enums(admin, reseller, user)
// @Param        is_active  query     bool    false  "Filter by activity flag"
// @Param        search     query     string  false  "Case-insensitive substring on username or email"
// @Success      200  {array}   domain.SafeUser
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	filter := ports.ListUsersFilter{
		Role:   c.QueryParam("role"),
		Search: c.QueryParam("search"),
	}
	if raw := c.QueryParam("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "is_active must be a boolean"})
		}
		filter.IsActive = &active
	}

	users, err := h.service.GetUsers(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID handles GET /v1/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.SafeUser
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	user, err := h.service.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// ListByRole handles GET /v1/users/role/:role.
//
// @Summary      List users holding a role
// @Tags         users
// @Produce      json
// @Param        role  path      string  true  "Role"  Enums(admin, reseller, user)
// @Success      200   {array}   domain.SafeUser
// @Failure      400   {object}  errorResponse
// @Router       /v1/users/role/{role} [get]
func (h *UserHandler) ListByRole(c echo.Context) error {
	role := c.Param("role")
	if !domain.ValidRole(role) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrInvalidRole.Error()})
	}

	users, err := h.service.GetUsersByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PATCH /v1/users/:id.
//
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  domain.SafeUser
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
		}
		return err
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  deleteUserResponse
// @Failure      400  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	deleted, err := h.service.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if deleted {
		metrics.UsersDeletedTotal.Inc()
	}
	return c.JSON(http.StatusOK, deleteUserResponse{Deleted: deleted})
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
