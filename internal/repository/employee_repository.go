// This file gives read-only access to the staff directory. The
// employees table is seeded by the HR import; this service never
// writes to it.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrEmployeeNotFound is returned when an employee id does not exist.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepo encapsulates read queries against the staff directory.
type EmployeeRepo struct {
	db *sql.DB
}

// NewEmployeeRepo constructs an EmployeeRepo with the provided DB handle.
func NewEmployeeRepo(db *sql.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

// ListAll returns the whole directory ordered by id. Search happens
// client-side over this snapshot (view.FilterEmployees), matching
// how the mobile app filtered its in-memory staff list.
func (r *EmployeeRepo) ListAll(ctx context.Context) ([]*model.Employee, error) {
	const q = `SELECT id, uid, name, role, email FROM employees ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Employee
	for rows.Next() {
		e := new(model.Employee)
		if err := rows.Scan(&e.ID, &e.UID, &e.Name, &e.Role, &e.Email); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one employee, used to snapshot their fields into a
// new assignment. Returns ErrEmployeeNotFound when absent.
func (r *EmployeeRepo) GetByID(ctx context.Context, id uint64) (*model.Employee, error) {
	const q = `SELECT id, uid, name, role, email FROM employees WHERE id = ?`
	e := new(model.Employee)
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.UID, &e.Name, &e.Role, &e.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}
