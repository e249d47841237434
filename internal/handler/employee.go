package handler // handler package contains staff directory handlers

import (
    "net/http"

    "github.com/iliyamo/facility-ops/internal/model"
    "github.com/iliyamo/facility-ops/internal/view"
    "github.com/labstack/echo/v4"
)

// ListEmployees handles GET /v1/employees?q=. The directory snapshot
// is filtered by a case-insensitive substring on name or email; an
// empty query returns the directory untouched.
func (h *FacilityHandler) ListEmployees(c echo.Context) error {
    all, err := h.Employees.ListAll(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    items := view.FilterEmployees(all, c.QueryParam("q"))
    if items == nil {
        items = []*model.Employee{}
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}
