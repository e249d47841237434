package model

import (
	"fmt"
	"strings"
)

// ValidationError reports a missing or malformed required field.  It
// is raised before any store call so the caller is told immediately;
// handlers translate it into HTTP 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func missing(field string) *ValidationError { return &ValidationError{Field: field} }

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateSpace checks the fields required to create or update a
// parent space: non-empty name, a category reference, a known kind.
func ValidateSpace(s *Space) error {
	if strings.TrimSpace(s.Name) == "" {
		return missing("name")
	}
	if strings.TrimSpace(s.CategoryID) == "" {
		return missing("category_id")
	}
	if !s.Kind.IsValid() {
		return invalid("kind", "must be FLOOR, BUILDING, ZONE or WING")
	}
	return nil
}

// ValidateSubSpace checks the fields required for a sub-space: the
// owning space, a room number and a known status.
func ValidateSubSpace(s *SubSpace) error {
	if s.SpaceID == 0 {
		return missing("space_id")
	}
	if strings.TrimSpace(s.Number) == "" {
		return missing("number")
	}
	if !s.Status.IsValid() {
		return invalid("status", "must be FREE, OCCUPIED or MAINTENANCE")
	}
	return nil
}

// ValidateCategory checks a custom category: non-empty name and a
// known kind.
func ValidateCategory(c *Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return missing("name")
	}
	if !c.Kind.IsValid() {
		return invalid("kind", "must be PUBLIC or PROFESSIONAL")
	}
	return nil
}

// ValidateAssignment checks the fields an assignment needs before it
// reaches the ledger.
func ValidateAssignment(a *Assignment) error {
	if !a.TargetKind.IsValid() {
		return invalid("target_kind", "must be SPACE or SUB_SPACE")
	}
	if a.TargetID == 0 {
		return missing("target_id")
	}
	if a.EmployeeID == 0 {
		return missing("employee_id")
	}
	if strings.TrimSpace(a.TaskType) == "" {
		return missing("task_type")
	}
	if strings.TrimSpace(a.StartDate) == "" {
		return missing("start_date")
	}
	return nil
}

// ValidateDraft checks a reclamation draft.  Room number, service
// and urgency are required; description and photo stay optional.
func ValidateDraft(d *ReclamationDraft) error {
	if strings.TrimSpace(d.RoomNumber) == "" {
		return missing("room_number")
	}
	if strings.TrimSpace(d.Service) == "" {
		return missing("service")
	}
	if d.Urgency == "" {
		return missing("urgency")
	}
	if !d.Urgency.IsValid() {
		return invalid("urgency", "must be LOW, MEDIUM, HIGH or CRITICAL")
	}
	return nil
}
