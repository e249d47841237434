package handler // handler package contains category registry handlers

import (
    "net/http"
    "strings"

    "github.com/iliyamo/facility-ops/internal/model"
    "github.com/labstack/echo/v4"
)

// ListCategories handles GET /v1/categories: the merged registry,
// built-ins first in fixed order, then custom categories in creation
// order. There is no update or delete for categories.
func (h *FacilityHandler) ListCategories(c echo.Context) error {
    items, err := h.Categories.ListAll(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CreateCategory handles POST /v1/categories (admin only). The new
// category appears after all built-ins in the next registry snapshot.
func (h *FacilityHandler) CreateCategory(c echo.Context) error {
    var body struct {
        Name  string `json:"name"`  // required display name
        Kind  string `json:"kind"`  // PUBLIC | PROFESSIONAL
        Color string `json:"color"` // hex color
        Icon  string `json:"icon"`  // emoji / icon token
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    cat := &model.Category{
        Name:  strings.TrimSpace(body.Name),
        Kind:  model.CategoryKind(strings.ToUpper(strings.TrimSpace(body.Kind))),
        Color: strings.TrimSpace(body.Color),
        Icon:  strings.TrimSpace(body.Icon),
    }
    if err := h.Categories.Create(c.Request().Context(), cat); err != nil {
        return writeError(c, err)
    }
    if all, err := h.Categories.ListAll(c.Request().Context()); err == nil {
        h.Hub.Publish(colCategories, all)
    }
    return c.JSON(http.StatusCreated, cat)
}
