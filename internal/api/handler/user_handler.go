package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/api/metrics"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

// UserHandler exposes account management to admins.
type UserHandler struct {
	authService ports.AuthService
}

func NewUserHandler(authService ports.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// List returns every account in creation order.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   domain.User
// @Failure      403   {object}  map[string]string
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.authService.Users(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.UsersTotal.Set(float64(len(users)))
	return c.JSON(http.StatusOK, users)
}

// Create registers a non-admin account.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      credentialsRequest  true  "New account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.authService.CreateUser(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	h.refreshUsersTotal(c.Request().Context())
	return c.JSON(http.StatusCreated, user)
}

// Delete removes an account. Unknown users and the admin are left alone.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        username  path  string  true  "Username"
// @Success      204
// @Failure      403   {object}  map[string]string
// @Router       /v1/users/{username} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.authService.DeleteUser(c.Request().Context(), c.Param("username")); err != nil {
		return err
	}
	h.refreshUsersTotal(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// refreshUsersTotal resets the gauge from the stored accounts. A failed read
// leaves the previous value.
func (h *UserHandler) refreshUsersTotal(ctx context.Context) {
	if users, err := h.authService.Users(ctx); err == nil {
		metrics.UsersTotal.Set(float64(len(users)))
	}
}
