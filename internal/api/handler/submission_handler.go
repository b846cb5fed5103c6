package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/core/ports"
)

type SubmissionHandler struct {
	service ports.SubmissionService
}

func NewSubmissionHandler(service ports.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// List returns every stored submission, most recent first.
//
// @Summary      List submissions
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   domain.Submission
// @Router       /v1/submissions [get]
func (h *SubmissionHandler) List(c echo.Context) error {
	subs, err := h.service.Submissions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, subs)
}

// Get returns one submission by id.
//
// @Summary      Get submission
// @Tags         submissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Submission id"
// @Success      200  {object}  domain.Submission
// @Failure      404  {object}  map[string]string
// @Router       /v1/submissions/{id} [get]
func (h *SubmissionHandler) Get(c echo.Context) error {
	sub, err := h.service.Submission(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sub)
}
