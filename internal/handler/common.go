package handler // handler defines http handlers

import (
    "errors"   // errors provides sentinel values used in getUserID
    "net/http" // net/http supplies status code constants
    "strconv"  // strconv converts strings to numeric types

    "github.com/iliyamo/facility-ops/internal/model"      // model holds domain types and validation
    "github.com/iliyamo/facility-ops/internal/repository" // repository holds data access layer
    "github.com/iliyamo/facility-ops/internal/watch"      // watch fans snapshots out to live subscribers
    "github.com/labstack/echo/v4"                         // echo defines request context types
)

// FacilityHandler bundles the repositories and the snapshot hub used
// by the space, category, assignment, employee and dashboard routes.
type FacilityHandler struct {
    Spaces      *repository.SpaceRepo
    SubSpaces   *repository.SubSpaceRepo
    Categories  *repository.CategoryRepo
    Assignments *repository.AssignmentRepo
    Employees   *repository.EmployeeRepo
    Hub         *watch.Hub
}

// NewFacilityHandler constructs a FacilityHandler and panics if any
// dependency is nil; wiring bugs should fail at startup, not on the
// first request.
func NewFacilityHandler(spaces *repository.SpaceRepo, subs *repository.SubSpaceRepo, cats *repository.CategoryRepo,
    assigns *repository.AssignmentRepo, emps *repository.EmployeeRepo, hub *watch.Hub) *FacilityHandler {
    if spaces == nil || subs == nil || cats == nil || assigns == nil || emps == nil || hub == nil {
        panic("nil dependency passed to NewFacilityHandler")
    }
    return &FacilityHandler{
        Spaces:      spaces,
        SubSpaces:   subs,
        Categories:  cats,
        Assignments: assigns,
        Employees:   emps,
        Hub:         hub,
    }
}

// Hub collection names. These mirror the collections of the original
// hosted store so stream consumers keep familiar identifiers.
const (
    colSpaces      = "spaces"
    colSubSpaces   = "sub-spaces"
    colCategories  = "space-categories"
    colAssignments = "assignments"
)

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// pathID parses the numeric :id (or other named) path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
    return strconv.ParseUint(c.Param(name), 10, 64)
}

// writeError maps domain errors onto HTTP responses. Validation
// failures become 400 before any store call; not-found sentinels
// become 404; ErrCascadeIncomplete gets its own retryable 409 code so
// callers re-issue the delete instead of assuming a clean no-op.
// Anything else is a store rejection relayed verbatim with 500.
func writeError(c echo.Context, err error) error {
    var verr *model.ValidationError
    if errors.As(err, &verr) {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": verr.Error()})
    }
    switch {
    case errors.Is(err, repository.ErrSpaceNotFound),
        errors.Is(err, repository.ErrSubSpaceNotFound),
        errors.Is(err, repository.ErrCategoryNotFound),
        errors.Is(err, repository.ErrAssignmentNotFound),
        errors.Is(err, repository.ErrEmployeeNotFound),
        errors.Is(err, repository.ErrReclamationNotFound):
        return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
    case errors.Is(err, repository.ErrCascadeIncomplete):
        return c.JSON(http.StatusConflict, map[string]string{
            "error": err.Error(),
            "code":  "cascade_incomplete",
        })
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
    case errors.Is(err, repository.ErrForbidden):
        return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
    }
    return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
