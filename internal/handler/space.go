package handler // handler package contains parent space handlers

import (
    "net/http" // http defines status code constants
    "strings"  // strings manipulates and trims text

    "github.com/iliyamo/facility-ops/internal/model" // model holds domain types
    "github.com/iliyamo/facility-ops/internal/view"  // view filters snapshots for presentation
    "github.com/labstack/echo/v4"                    // echo framework supplies request context
)

// CreateSpace handles POST /v1/spaces. A space needs a name and a
// category; number and description stay optional. The returned id is
// the payload clients render as the space's QR label.
func (h *FacilityHandler) CreateSpace(c echo.Context) error {
    var body struct {
        Name        string  `json:"name"`        // required display name
        Kind        string  `json:"kind"`        // FLOOR | BUILDING | ZONE | WING
        Number      *string `json:"number"`      // optional ordinal
        CategoryID  string  `json:"category_id"` // required category reference
        Description *string `json:"description"` // optional free text
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    kind := model.SpaceKind(strings.ToUpper(strings.TrimSpace(body.Kind)))
    if body.Kind == "" {
        kind = model.SpaceFloor // the mobile client creates floors by default
    }
    s := &model.Space{
        Name:        strings.TrimSpace(body.Name),
        Kind:        kind,
        Number:      trimPtr(body.Number),
        CategoryID:  strings.TrimSpace(body.CategoryID),
        Description: trimPtr(body.Description),
    }
    if err := model.ValidateSpace(s); err != nil {
        return writeError(c, err)
    }
    // The category must resolve to a built-in or a custom row before
    // the space references it.
    ok, err := h.Categories.Exists(c.Request().Context(), s.CategoryID)
    if err != nil {
        return writeError(c, err)
    }
    if !ok {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown category_id"})
    }
    if err := h.Spaces.Create(c.Request().Context(), s); err != nil {
        return writeError(c, err)
    }
    h.publishSpaces(c)
    return c.JSON(http.StatusCreated, s)
}

// ListSpaces handles GET /v1/spaces?q=&category=. Filtering is the
// client-side snapshot filter of the original app moved server-side:
// case-insensitive name substring AND category, both conjunctive,
// with "all" (or absent) as the category wildcard.
func (h *FacilityHandler) ListSpaces(c echo.Context) error {
    all, err := h.Spaces.ListAll(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    items := view.FilterSpaces(all, c.QueryParam("q"), c.QueryParam("category"))
    if items == nil {
        items = []*model.Space{}
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// GetSpace handles GET /v1/spaces/:id and returns the space together
// with its sub-spaces and its own assignment list.
func (h *FacilityHandler) GetSpace(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    s, err := h.Spaces.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    subs, err := h.SubSpaces.ListBySpace(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    if subs == nil {
        subs = []*model.SubSpace{}
    }
    assigns, err := h.Assignments.ListForTarget(c.Request().Context(), model.TargetSpace, id)
    if err != nil {
        return writeError(c, err)
    }
    if assigns == nil {
        assigns = []*model.Assignment{}
    }
    return c.JSON(http.StatusOK, map[string]any{
        "space":       s,
        "sub_spaces":  subs,
        "assignments": assigns,
    })
}

// UpdateSpace handles PUT /v1/spaces/:id. The current row is loaded,
// provided fields overlaid, and the whole row written back: a
// full-document merge where the last writer wins.
func (h *FacilityHandler) UpdateSpace(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    cur, err := h.Spaces.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    var body struct {
        Name        *string `json:"name"`
        Kind        *string `json:"kind"`
        Number      *string `json:"number"`
        CategoryID  *string `json:"category_id"`
        Description *string `json:"description"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if body.Name != nil {
        cur.Name = strings.TrimSpace(*body.Name)
    }
    if body.Kind != nil {
        cur.Kind = model.SpaceKind(strings.ToUpper(strings.TrimSpace(*body.Kind)))
    }
    if body.Number != nil {
        // an empty string clears the number
        cur.Number = trimPtr(body.Number)
    }
    if body.CategoryID != nil {
        cur.CategoryID = strings.TrimSpace(*body.CategoryID)
    }
    if body.Description != nil {
        cur.Description = trimPtr(body.Description)
    }
    if err := model.ValidateSpace(cur); err != nil {
        return writeError(c, err)
    }
    if body.CategoryID != nil {
        ok, err := h.Categories.Exists(c.Request().Context(), cur.CategoryID)
        if err != nil {
            return writeError(c, err)
        }
        if !ok {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown category_id"})
        }
    }
    if err := h.Spaces.Update(c.Request().Context(), cur); err != nil {
        return writeError(c, err)
    }
    fresh, err := h.Spaces.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    h.publishSpaces(c)
    return c.JSON(http.StatusOK, fresh)
}

// DeleteSpace handles DELETE /v1/spaces/:id: the cascading delete of
// the space, its sub-spaces and every attached assignment. A
// cascade_incomplete response means "retry the delete", never
// silent partial success.
func (h *FacilityHandler) DeleteSpace(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.Spaces.DeleteCascade(c.Request().Context(), id); err != nil {
        return writeError(c, err)
    }
    h.publishSpaces(c)
    h.publishSubSpaces(c)
    return c.NoContent(http.StatusNoContent)
}

// publishSpaces pushes a fresh full snapshot of the spaces collection
// to live subscribers. Failures only cost the push, not the request:
// the next successful mutation re-publishes everything anyway.
func (h *FacilityHandler) publishSpaces(c echo.Context) {
    if all, err := h.Spaces.ListAll(c.Request().Context()); err == nil {
        h.Hub.Publish(colSpaces, all)
    }
}

// publishSubSpaces does the same for the sub-spaces collection.
func (h *FacilityHandler) publishSubSpaces(c echo.Context) {
    if all, err := h.SubSpaces.ListAll(c.Request().Context()); err == nil {
        h.Hub.Publish(colSubSpaces, all)
    }
}

// trimPtr trims a bound optional string; empty becomes nil so blank
// input clears the column.
func trimPtr(p *string) *string {
    if p == nil {
        return nil
    }
    s := strings.TrimSpace(*p)
    if s == "" {
        return nil
    }
    return &s
}
