package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minesite/dispatch-form/internal/api/metrics"
	"github.com/minesite/dispatch-form/internal/core/domain"
	"github.com/minesite/dispatch-form/internal/core/ports"
)

const headerIdempotencyKey = "Idempotency-Key"

// FormHandler drives the kiosk's single draft dispatch sheet.
type FormHandler struct {
	form  ports.FormService
	guard ports.SubmitGuard
}

func NewFormHandler(form ports.FormService, guard ports.SubmitGuard) *FormHandler {
	return &FormHandler{form: form, guard: guard}
}

type rowEditRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type escortEditRequest struct {
	Field string `json:"field" validate:"required,oneof=id value"`
	Value string `json:"value"`
}

type notesRequest struct {
	Comments    *string `json:"comments"`
	RDO         *string `json:"rdo"`
	SpareDriver *string `json:"spareDriver"`
	SickAbsent  *string `json:"sickAbsent"`
}

func (r notesRequest) fields() []struct {
	name  string
	value *string
} {
	return []struct {
		name  string
		value *string
	}{
		{domain.NoteComments, r.Comments},
		{domain.NoteRDO, r.RDO},
		{domain.NoteSpareDriver, r.SpareDriver},
		{domain.NoteSickAbsent, r.SickAbsent},
	}
}

// Get returns the current draft, its state and any pending notice.
//
// @Summary      Current form
// @Tags         form
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FormSnapshot
// @Router       /v1/form [get]
func (h *FormHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.form.Snapshot())
}

// UpdateDriver edits one field of a fleet row.
//
// @Summary      Edit fleet row
// @Tags         form
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Row id (bus number)"
// @Param        body  body      rowEditRequest  true  "Field and value"
// @Success      200   {object}  ports.FormSnapshot
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/form/drivers/{id} [patch]
func (h *FormHandler) UpdateDriver(c echo.Context) error {
	var req rowEditRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.form.UpdateDriver(c.Param("id"), req.Field, req.Value); err != nil {
		return err
	}
	metrics.FormEditsTotal.WithLabelValues("driver").Inc()
	return c.JSON(http.StatusOK, h.form.Snapshot())
}

// UpdateEscort edits the label or value of an escort row.
//
// @Summary      Edit escort row
// @Tags         form
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string             true  "Escort row key"
// @Param        body  body      escortEditRequest  true  "Field and value"
// @Success      200   {object}  ports.FormSnapshot
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/form/escorts/{key} [patch]
func (h *FormHandler) UpdateEscort(c echo.Context) error {
	var req escortEditRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.form.UpdateEscort(c.Param("key"), req.Field, req.Value); err != nil {
		return err
	}
	metrics.FormEditsTotal.WithLabelValues("escort").Inc()
	return c.JSON(http.StatusOK, h.form.Snapshot())
}

// SetNotes replaces the note fields present in the body.
//
// @Summary      Edit notes
// @Tags         form
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      notesRequest  true  "Notes to set"
// @Success      200   {object}  ports.FormSnapshot
// @Failure      400   {object}  map[string]string
// @Router       /v1/form/notes [patch]
func (h *FormHandler) SetNotes(c echo.Context) error {
	var req notesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	applied := 0
	for _, f := range req.fields() {
		if f.value == nil {
			continue
		}
		if err := h.form.SetNote(f.name, *f.value); err != nil {
			return err
		}
		applied++
	}
	if applied == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no note fields given")
	}
	metrics.FormEditsTotal.WithLabelValues("note").Add(float64(applied))
	return c.JSON(http.StatusOK, h.form.Snapshot())
}

// Submit stores the draft under the logged-in user. A repeated
// Idempotency-Key is rejected with 409.
//
// @Summary      Submit form
// @Tags         form
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string  false  "Replay protection key"
// @Success      201              {object}  domain.Submission
// @Failure      401              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /v1/form/submit [post]
func (h *FormHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	if key := strings.TrimSpace(c.Request().Header.Get(headerIdempotencyKey)); key != "" {
		fresh, err := h.guard.Claim(ctx, key)
		if err != nil {
			return err
		}
		if !fresh {
			metrics.SubmissionsTotal.WithLabelValues("duplicate").Inc()
			return domain.ErrDuplicateSubmission
		}
	}

	sub, err := h.form.Submit(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			metrics.SubmissionsTotal.WithLabelValues("unauthenticated").Inc()
		} else {
			metrics.SubmissionsTotal.WithLabelValues("error").Inc()
		}
		return err
	}
	metrics.SubmissionsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, sub)
}

// Reset discards the draft.
//
// @Summary      Reset form
// @Tags         form
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FormSnapshot
// @Failure      409  {object}  map[string]string
// @Router       /v1/form [delete]
func (h *FormHandler) Reset(c echo.Context) error {
	if err := h.form.Reset(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.form.Snapshot())
}
