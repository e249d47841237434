package handler // handler package contains assignment ledger handlers

import (
    "net/http"
    "strings"

    "github.com/iliyamo/facility-ops/internal/model"
    "github.com/labstack/echo/v4"
)

// checkTarget verifies that the target of an assignment route exists
// for the kind implied by the route prefix.
func (h *FacilityHandler) checkTarget(c echo.Context, kind model.TargetKind, id uint64) error {
    var err error
    switch kind {
    case model.TargetSpace:
        _, err = h.Spaces.GetByID(c.Request().Context(), id)
    case model.TargetSubSpace:
        _, err = h.SubSpaces.GetByID(c.Request().Context(), id)
    }
    return err
}

// createAssignment is shared by the space and sub-space assign routes.
// The employee is resolved from the staff directory and their fields
// snapshotted into the ledger row; appending is a plain insert, so
// two concurrent assigns both land.
func (h *FacilityHandler) createAssignment(c echo.Context, kind model.TargetKind) error {
    targetID, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.checkTarget(c, kind, targetID); err != nil {
        return writeError(c, err)
    }
    var body struct {
        EmployeeID uint64  `json:"employee_id"` // staff directory reference
        TaskType   string  `json:"task_type"`   // what the employee is assigned to do
        StartDate  string  `json:"start_date"`  // ISO date the task starts
        Notes      *string `json:"notes"`       // optional free text
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    emp, err := h.Employees.GetByID(c.Request().Context(), body.EmployeeID)
    if err != nil {
        return writeError(c, err)
    }
    a := &model.Assignment{
        TargetKind:   kind,
        TargetID:     targetID,
        EmployeeID:   emp.ID,
        EmployeeUID:  emp.UID,
        EmployeeName: emp.Name,
        EmployeeRole: emp.Role,
        TaskType:     strings.TrimSpace(body.TaskType),
        StartDate:    strings.TrimSpace(body.StartDate),
        Notes:        trimPtr(body.Notes),
    }
    if err := model.ValidateAssignment(a); err != nil {
        return writeError(c, err)
    }
    if err := h.Assignments.Create(c.Request().Context(), a); err != nil {
        return writeError(c, err)
    }
    h.publishAssignments(c, kind, targetID)
    return c.JSON(http.StatusCreated, a)
}

// AssignToSpace handles POST /v1/spaces/:id/assignments.
func (h *FacilityHandler) AssignToSpace(c echo.Context) error {
    return h.createAssignment(c, model.TargetSpace)
}

// AssignToSubSpace handles POST /v1/sub-spaces/:id/assignments.
func (h *FacilityHandler) AssignToSubSpace(c echo.Context) error {
    return h.createAssignment(c, model.TargetSubSpace)
}

// listAssignments is shared by the two GET assignment routes.
func (h *FacilityHandler) listAssignments(c echo.Context, kind model.TargetKind) error {
    targetID, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.checkTarget(c, kind, targetID); err != nil {
        return writeError(c, err)
    }
    items, err := h.Assignments.ListForTarget(c.Request().Context(), kind, targetID)
    if err != nil {
        return writeError(c, err)
    }
    if items == nil {
        items = []*model.Assignment{}
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// ListSpaceAssignments handles GET /v1/spaces/:id/assignments.
func (h *FacilityHandler) ListSpaceAssignments(c echo.Context) error {
    return h.listAssignments(c, model.TargetSpace)
}

// ListSubSpaceAssignments handles GET /v1/sub-spaces/:id/assignments.
func (h *FacilityHandler) ListSubSpaceAssignments(c echo.Context) error {
    return h.listAssignments(c, model.TargetSubSpace)
}

// Unassign handles DELETE /v1/assignments/:id. Removal is by the
// assignment's stable id, never by position, so concurrent mutation
// cannot remove the wrong row. The row is resolved first so the
// target's fresh list can be published after the delete.
func (h *FacilityHandler) Unassign(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    a, err := h.Assignments.GetByID(c.Request().Context(), id)
    if err != nil {
        return writeError(c, err)
    }
    if err := h.Assignments.Delete(c.Request().Context(), id); err != nil {
        return writeError(c, err)
    }
    h.publishAssignments(c, a.TargetKind, a.TargetID)
    return c.NoContent(http.StatusNoContent)
}

// publishAssignments pushes the target's fresh assignment list to
// live subscribers and bumps the assignments version the dashboard
// cache keys on.
func (h *FacilityHandler) publishAssignments(c echo.Context, kind model.TargetKind, targetID uint64) {
    items, err := h.Assignments.ListForTarget(c.Request().Context(), kind, targetID)
    if err != nil {
        return
    }
    h.publishAssignmentList(items)
}

// publishAssignmentList delivers a ledger snapshot; a nil list becomes
// an empty slice so subscribers never see null items.
func (h *FacilityHandler) publishAssignmentList(items []*model.Assignment) {
    if items == nil {
        items = []*model.Assignment{}
    }
    h.Hub.Publish(colAssignments, items)
}
