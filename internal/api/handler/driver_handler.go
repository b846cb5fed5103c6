package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/api/metrics"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

type DriverHandler struct {
	service ports.DriverService
}

func NewDriverHandler(service ports.DriverService) *DriverHandler {
	return &DriverHandler{service: service}
}

type addDriverRequest struct {
	Name string `json:"name"`
}

type rosterResponse struct {
	Drivers []string `json:"drivers"`
}

func (h *DriverHandler) respond(c echo.Context, status int, drivers []string) error {
	metrics.RosterSize.Set(float64(len(drivers)))
	return c.JSON(status, rosterResponse{Drivers: drivers})
}

// List returns the roster in sorted order.
//
// @Summary      List drivers
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  rosterResponse
// @Router       /v1/drivers [get]
func (h *DriverHandler) List(c echo.Context) error {
	drivers, err := h.service.Drivers(c.Request().Context())
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, drivers)
}

// Add puts a driver on the roster.
//
// @Summary      Add driver
// @Tags         drivers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addDriverRequest  true  "Driver"
// @Success      201   {object}  rosterResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/drivers [post]
func (h *DriverHandler) Add(c echo.Context) error {
	var req addDriverRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	drivers, err := h.service.AddDriver(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusCreated, drivers)
}

// Delete removes the driver with exactly this name, if present.
//
// @Summary      Delete driver
// @Tags         drivers
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string  true  "Driver name"
// @Success      200   {object}  rosterResponse
// @Router       /v1/drivers/{name} [delete]
func (h *DriverHandler) Delete(c echo.Context) error {
	drivers, err := h.service.DeleteDriver(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return h.respond(c, http.StatusOK, drivers)
}
