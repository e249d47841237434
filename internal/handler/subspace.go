package handler // handler package contains sub-space (room) handlers

import (
    "net/http"
    "strings"

    "github.com/iliyamo/facility-ops/internal/model"
    "github.com/labstack/echo/v4"
)

// subSpaceBody is the JSON shape shared by create and update.
type subSpaceBody struct {
    SpaceID   *uint64  `json:"space_id"`  // owning parent space
    Name      *string  `json:"name"`      // optional label
    Number    *string  `json:"number"`    // room number
    Kind      *string  `json:"kind"`      // room type, free-form
    Area      *float64 `json:"area"`      // optional surface in m²
    Capacity  *uint32  `json:"capacity"`  // optional headcount
    Status    *string  `json:"status"`    // FREE | OCCUPIED | MAINTENANCE
    Equipment []string `json:"equipment"` // equipment tags
}

// CreateSubSpace handles POST /v1/sub-spaces. The parent space must
// exist: the space_id reference is enforced here, not by the schema.
func (h *FacilityHandler) CreateSubSpace(c echo.Context) error {
    var body subSpaceBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    s := &model.SubSpace{
        Name:      trimPtr(body.Name),
        Kind:      "chambre", // default room type used by the mobile client
        Status:    model.SubSpaceFree,
        Area:      body.Area,
        Capacity:  body.Capacity,
        Equipment: body.Equipment,
    }
    if body.SpaceID != nil {
        s.SpaceID = *body.SpaceID
    }
    if body.Number != nil {
        s.Number = strings.TrimSpace(*body.Number)
    }
    if body.Kind != nil && strings.TrimSpace(*body.Kind) != "" {
        s.Kind = strings.TrimSpace(*body.Kind)
    }
    if body.Status != nil && strings.TrimSpace(*body.Status) != "" {
        s.Status = model.SubSpaceStatus(strings.ToUpper(strings.TrimSpace(*body.Status)))
    }
    if err := model.ValidateSubSpace(s); err != nil {
        return writeError(c, err)
    }
    if _, err := h.Spaces.GetByID(c.Request().Context(), s.SpaceID); err != nil {
        return writeError(c, err)
    }
    if err := h.SubSpaces.Create(c.Request().Context(), s); err != nil {
        return writeError(c, err)
    }
    h.publishSubSpaces(c)
    return c.JSON(http.StatusCreated, s)
}

// ListSubSpaces handles GET /v1/spaces/:id/sub-spaces: the children
// of one parent in store order.
func (h *FacilityHandler) ListSubSpaces(c echo.Context) error {
    spaceID, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    items, err := h.SubSpaces.ListBySpace(c.Request().Context(), spaceID)
    if err != nil {
        return writeError(c, err)
    }
    if items == nil {
        items = []*model.SubSpace{}
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateSubSpace handles PUT /v1/sub-spaces/:id with the same
// load-overlay-rewrite merge as spaces. Re-parenting is allowed when
// the new space exists.
func (h *FacilityHandler) UpdateSubSpace(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    cur, err := h.SubSpaces.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    var body subSpaceBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if body.SpaceID != nil && *body.SpaceID != cur.SpaceID {
        if _, err := h.Spaces.GetByID(c.Request().Context(), *body.SpaceID); err != nil {
            return writeError(c, err)
        }
        cur.SpaceID = *body.SpaceID
    }
    if body.Name != nil {
        cur.Name = trimPtr(body.Name)
    }
    if body.Number != nil {
        cur.Number = strings.TrimSpace(*body.Number)
    }
    if body.Kind != nil && strings.TrimSpace(*body.Kind) != "" {
        cur.Kind = strings.TrimSpace(*body.Kind)
    }
    if body.Area != nil {
        cur.Area = body.Area
    }
    if body.Capacity != nil {
        cur.Capacity = body.Capacity
    }
    if body.Status != nil {
        cur.Status = model.SubSpaceStatus(strings.ToUpper(strings.TrimSpace(*body.Status)))
    }
    if body.Equipment != nil {
        cur.Equipment = body.Equipment
    }
    if err := model.ValidateSubSpace(cur); err != nil {
        return writeError(c, err)
    }
    if err := h.SubSpaces.Update(c.Request().Context(), cur); err != nil {
        return writeError(c, err)
    }
    fresh, err := h.SubSpaces.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    h.publishSubSpaces(c)
    return c.JSON(http.StatusOK, fresh)
}

// DeleteSubSpace handles DELETE /v1/sub-spaces/:id. Single-document
// delete plus its own assignments; no wider cascade.
func (h *FacilityHandler) DeleteSubSpace(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.SubSpaces.Delete(c.Request().Context(), id); err != nil {
        return writeError(c, err)
    }
    h.publishSubSpaces(c)
    return c.NoContent(http.StatusNoContent)
}
