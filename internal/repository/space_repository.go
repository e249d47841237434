// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for parent spaces: the floor/building/
// zone/wing-level containers of the facility hierarchy. Sub-spaces reference
// their parent through sub_spaces.space_id; the schema does not enforce the
// link, so DeleteCascade removes the whole subtree inside one transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrSpaceNotFound is returned when a parent space cannot be found.
var ErrSpaceNotFound = errors.New("space not found")

// SpaceRepo encapsulates all database queries related to parent spaces.
type SpaceRepo struct {
	db *sql.DB
}

// NewSpaceRepo constructs a SpaceRepo with the provided DB handle. This
// allows dependency injection of the database in tests and at startup.
func NewSpaceRepo(db *sql.DB) *SpaceRepo {
	return &SpaceRepo{db: db}
}

// scanSpace reads one spaces row into a model.Space, converting the
// nullable columns to pointers.
func scanSpace(row interface{ Scan(...any) error }) (*model.Space, error) {
	var (
		s      model.Space
		kind   string
		number sql.NullString
		desc   sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Name, &kind, &number, &s.CategoryID, &desc, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Kind = model.SpaceKind(kind)
	if number.Valid {
		s.Number = &number.String
	}
	if desc.Valid {
		s.Description = &desc.String
	}
	return &s, nil
}

// Create inserts a new parent space. On success the ID field is
// populated with the auto-generated value and the timestamp columns
// are read back so callers receive a fully populated record. The id
// is the payload later rendered as the space's QR label.
func (r *SpaceRepo) Create(ctx context.Context, s *model.Space) error {
	var number, desc sql.NullString
	if s.Number != nil {
		number = sql.NullString{String: *s.Number, Valid: true}
	}
	if s.Description != nil {
		desc = sql.NullString{String: *s.Description, Valid: true}
	}
	const qInsert = `INSERT INTO spaces (name, kind, number, category_id, description)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, s.Name, string(s.Kind), number, s.CategoryID, desc)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM spaces WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a parent space by id. It returns ErrSpaceNotFound
// when no row exists.
func (r *SpaceRepo) GetByID(ctx context.Context, id uint64) (*model.Space, error) {
	const q = `SELECT id, name, kind, number, category_id, description, created_at, updated_at
	           FROM spaces WHERE id = ?`
	s, err := scanSpace(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListAll returns every parent space ordered by id. The order is the
// store order consumers treat as canonical when no filter applies.
func (r *SpaceRepo) ListAll(ctx context.Context) ([]*model.Space, error) {
	const q = `SELECT id, name, kind, number, category_id, description, created_at, updated_at
	           FROM spaces ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Space
	for rows.Next() {
		s, err := scanSpace(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update performs a full-row merge write: every mutable column is
// rewritten from the given value, last writer wins. It returns
// ErrSpaceNotFound when no row was affected.
func (r *SpaceRepo) Update(ctx context.Context, s *model.Space) error {
	var number, desc sql.NullString
	if s.Number != nil {
		number = sql.NullString{String: *s.Number, Valid: true}
	}
	if s.Description != nil {
		desc = sql.NullString{String: *s.Description, Valid: true}
	}
	const q = `UPDATE spaces
	           SET name = ?, kind = ?, number = ?, category_id = ?, description = ?,
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, string(s.Kind), number, s.CategoryID, desc, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSpaceNotFound
	}
	return nil
}

// DeleteCascade removes a parent space together with its sub-spaces
// and every assignment attached to either, inside one transaction.
// Children go first and the parent last, so a failed run never leaves
// sub-spaces pointing at a missing parent. Any error once the cascade
// has started (including commit) is wrapped in ErrCascadeIncomplete:
// callers must treat it as "retry the delete", not as silent success
// and not as a clean no-op.
func (r *SpaceRepo) DeleteCascade(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Verify the space exists before touching anything.
	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM spaces WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSpaceNotFound
		}
		return err
	}

	// Assignments attached to the sub-spaces of this space.
	if _, err = tx.ExecContext(ctx,
		`DELETE a FROM assignments a
		 JOIN sub_spaces ss ON ss.id = a.target_id
		 WHERE a.target_kind = 'SUB_SPACE' AND ss.space_id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete sub-space assignments: %v", ErrCascadeIncomplete, err)
	}
	// The sub-spaces themselves.
	if _, err = tx.ExecContext(ctx, `DELETE FROM sub_spaces WHERE space_id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete sub-spaces: %v", ErrCascadeIncomplete, err)
	}
	// Assignments attached directly to the space.
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE target_kind = 'SPACE' AND target_id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete space assignments: %v", ErrCascadeIncomplete, err)
	}
	// Finally the space itself.
	if _, err = tx.ExecContext(ctx, `DELETE FROM spaces WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete space: %v", ErrCascadeIncomplete, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrCascadeIncomplete, err)
	}
	return nil
}
