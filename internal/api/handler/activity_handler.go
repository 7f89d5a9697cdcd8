package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/store-api/internal/core/ports"
)

// ActivityHandler exposes the activity log to the admin dashboard.
type ActivityHandler struct {
	recorder ports.ActivityRecorder
}

func NewActivityHandler(recorder ports.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{recorder: recorder}
}

// List returns activity records, newest first, optionally filtered by
// username prefix.
//
// @Summary      List activity records
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Param        username  query    string  false  "Username prefix filter"
// @Success      200       {array}  domain.ActivityRecord
// @Router       /admin/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	records, err := h.recorder.List(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}
