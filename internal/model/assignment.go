package model

import "time"

// TargetKind says whether an assignment points at a parent space or
// at a sub-space.  Assignments live in their own table keyed by this
// pair, so removing one is by stable id rather than by position in an
// embedded array.
type TargetKind string

const (
	TargetSpace    TargetKind = "SPACE"
	TargetSubSpace TargetKind = "SUB_SPACE"
)

// IsValid reports whether the target kind is known.
func (k TargetKind) IsValid() bool {
	return k == TargetSpace || k == TargetSubSpace
}

// Assignment links an employee to a task on a specific space or
// sub-space.  Employee fields are denormalized at creation time so
// the ledger stays readable even if the staff directory row changes
// later.  AssignedAt is set server-side on insert.
type Assignment struct {
	ID           uint64     `json:"id"`
	TargetKind   TargetKind `json:"target_kind"`
	TargetID     uint64     `json:"target_id"`
	EmployeeID   uint64     `json:"employee_id"`
	EmployeeUID  string     `json:"employee_uid"`
	EmployeeName string     `json:"employee_name"`
	EmployeeRole string     `json:"employee_role"`
	TaskType     string     `json:"task_type"`
	StartDate    string     `json:"start_date"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedAt   time.Time  `json:"assigned_at"`
}
