// This file implements the assignment ledger. Assignments used to be
// modeled as an array embedded in each space document, mutated by
// read-modify-write; that loses concurrent appends and makes removal
// positional. Here they are a top-level table: append is an INSERT,
// removal is by stable id, and two concurrent writers can never drop
// each other's rows.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrAssignmentNotFound is returned when an assignment id does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentRepo encapsulates all database queries for the ledger.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the provided DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// Create appends one assignment to the ledger. assigned_at is set by
// the database at insert time and read back along with the id.
func (r *AssignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	var notes sql.NullString
	if a.Notes != nil {
		notes = sql.NullString{String: *a.Notes, Valid: true}
	}
	const qInsert = `INSERT INTO assignments
	                 (target_kind, target_id, employee_id, employee_uid, employee_name, employee_role,
	                  task_type, start_date, notes)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		string(a.TargetKind), a.TargetID, a.EmployeeID, a.EmployeeUID, a.EmployeeName, a.EmployeeRole,
		a.TaskType, a.StartDate, notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = `SELECT assigned_at FROM assignments WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, a.ID).Scan(&a.AssignedAt)
}

// GetByID fetches one assignment, used to resolve its target before
// removal. Returns ErrAssignmentNotFound when absent.
func (r *AssignmentRepo) GetByID(ctx context.Context, id uint64) (*model.Assignment, error) {
	const q = `SELECT id, target_kind, target_id, employee_id, employee_uid, employee_name, employee_role,
	                  task_type, start_date, notes, assigned_at
	           FROM assignments WHERE id = ?`
	var (
		a     model.Assignment
		tk    string
		notes sql.NullString
	)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &tk, &a.TargetID, &a.EmployeeID, &a.EmployeeUID,
		&a.EmployeeName, &a.EmployeeRole, &a.TaskType, &a.StartDate, &notes, &a.AssignedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	a.TargetKind = model.TargetKind(tk)
	if notes.Valid {
		a.Notes = &notes.String
	}
	return &a, nil
}

// ListForTarget returns the assignments attached to one space or
// sub-space in append order.
func (r *AssignmentRepo) ListForTarget(ctx context.Context, kind model.TargetKind, targetID uint64) ([]*model.Assignment, error) {
	const q = `SELECT id, target_kind, target_id, employee_id, employee_uid, employee_name, employee_role,
	                  task_type, start_date, notes, assigned_at
	           FROM assignments WHERE target_kind = ? AND target_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, string(kind), targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Assignment
	for rows.Next() {
		var (
			a     model.Assignment
			tk    string
			notes sql.NullString
		)
		if err := rows.Scan(&a.ID, &tk, &a.TargetID, &a.EmployeeID, &a.EmployeeUID, &a.EmployeeName,
			&a.EmployeeRole, &a.TaskType, &a.StartDate, &notes, &a.AssignedAt); err != nil {
			return nil, err
		}
		a.TargetKind = model.TargetKind(tk)
		if notes.Valid {
			a.Notes = &notes.String
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one assignment by its stable id. It returns
// ErrAssignmentNotFound when no row was affected, so callers can
// distinguish a repeat delete from a real failure.
func (r *AssignmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// CountAll returns the total number of assignments across every
// space and sub-space combined (dashboard stat).
func (r *AssignmentRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&n)
	return n, err
}
