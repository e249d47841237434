// This file defines repository methods for sub-spaces: the room-level
// units of the hierarchy. Equipment lists are stored as a JSON-encoded
// string column because the set is small and only ever read whole.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrSubSpaceNotFound is returned when a sub-space cannot be found.
var ErrSubSpaceNotFound = errors.New("sub-space not found")

// SubSpaceRepo encapsulates all database queries related to sub-spaces.
type SubSpaceRepo struct {
	db *sql.DB
}

// NewSubSpaceRepo constructs a SubSpaceRepo with the provided DB handle.
func NewSubSpaceRepo(db *sql.DB) *SubSpaceRepo {
	return &SubSpaceRepo{db: db}
}

func encodeEquipment(eq []string) (string, error) {
	if eq == nil {
		eq = []string{}
	}
	b, err := json.Marshal(eq)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// scanSubSpace reads one sub_spaces row, decoding nullable columns and
// the equipment JSON.
func scanSubSpace(row interface{ Scan(...any) error }) (*model.SubSpace, error) {
	var (
		s         model.SubSpace
		name      sql.NullString
		area      sql.NullFloat64
		capacity  sql.NullInt32
		status    string
		equipment string
	)
	if err := row.Scan(&s.ID, &s.SpaceID, &name, &s.Number, &s.Kind, &area, &capacity, &status, &equipment, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if name.Valid {
		s.Name = &name.String
	}
	if area.Valid {
		s.Area = &area.Float64
	}
	if capacity.Valid {
		v := uint32(capacity.Int32)
		s.Capacity = &v
	}
	s.Status = model.SubSpaceStatus(status)
	if equipment != "" {
		if err := json.Unmarshal([]byte(equipment), &s.Equipment); err != nil {
			return nil, err
		}
	}
	if s.Equipment == nil {
		s.Equipment = []string{}
	}
	return &s, nil
}

// Create inserts a new sub-space and reads back the generated id and
// timestamps so the caller receives a fully populated record.
func (r *SubSpaceRepo) Create(ctx context.Context, s *model.SubSpace) error {
	var name sql.NullString
	if s.Name != nil {
		name = sql.NullString{String: *s.Name, Valid: true}
	}
	var area sql.NullFloat64
	if s.Area != nil {
		area = sql.NullFloat64{Float64: *s.Area, Valid: true}
	}
	var capacity sql.NullInt32
	if s.Capacity != nil {
		capacity = sql.NullInt32{Int32: int32(*s.Capacity), Valid: true}
	}
	equipment, err := encodeEquipment(s.Equipment)
	if err != nil {
		return err
	}
	const qInsert = `INSERT INTO sub_spaces (space_id, name, number, kind, area, capacity, status, equipment)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, s.SpaceID, name, s.Number, s.Kind, area, capacity, string(s.Status), equipment)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = `SELECT created_at, updated_at FROM sub_spaces WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a sub-space by id. It returns ErrSubSpaceNotFound
// when no row exists.
func (r *SubSpaceRepo) GetByID(ctx context.Context, id uint64) (*model.SubSpace, error) {
	const q = `SELECT id, space_id, name, number, kind, area, capacity, status, equipment, created_at, updated_at
	           FROM sub_spaces WHERE id = ?`
	s, err := scanSubSpace(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubSpaceNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListBySpace returns all sub-spaces belonging to one parent space in
// store order.
func (r *SubSpaceRepo) ListBySpace(ctx context.Context, spaceID uint64) ([]*model.SubSpace, error) {
	const q = `SELECT id, space_id, name, number, kind, area, capacity, status, equipment, created_at, updated_at
	           FROM sub_spaces WHERE space_id = ? ORDER BY id`
	return r.list(ctx, q, spaceID)
}

// ListAll returns every sub-space ordered by id.
func (r *SubSpaceRepo) ListAll(ctx context.Context) ([]*model.SubSpace, error) {
	const q = `SELECT id, space_id, name, number, kind, area, capacity, status, equipment, created_at, updated_at
	           FROM sub_spaces ORDER BY id`
	return r.list(ctx, q)
}

func (r *SubSpaceRepo) list(ctx context.Context, q string, args ...any) ([]*model.SubSpace, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SubSpace
	for rows.Next() {
		s, err := scanSubSpace(rows)
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

// CountAll returns the total number of sub-spaces (dashboard stat).
func (r *SubSpaceRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sub_spaces`).Scan(&n)
	return n, err
}

// Update performs a full-row merge write, last writer wins. It
// returns ErrSubSpaceNotFound when no row was affected.
func (r *SubSpaceRepo) Update(ctx context.Context, s *model.SubSpace) error {
	var name sql.NullString
	if s.Name != nil {
		name = sql.NullString{String: *s.Name, Valid: true}
	}
	var area sql.NullFloat64
	if s.Area != nil {
		area = sql.NullFloat64{Float64: *s.Area, Valid: true}
	}
	var capacity sql.NullInt32
	if s.Capacity != nil {
		capacity = sql.NullInt32{Int32: int32(*s.Capacity), Valid: true}
	}
	equipment, err := encodeEquipment(s.Equipment)
	if err != nil {
		return err
	}
	const q = `UPDATE sub_spaces
	           SET space_id = ?, name = ?, number = ?, kind = ?, area = ?, capacity = ?,
	               status = ?, equipment = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.SpaceID, name, s.Number, s.Kind, area, capacity, string(s.Status), equipment, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSubSpaceNotFound
	}
	return nil
}

// Delete removes a single sub-space together with its assignments.
// No cascade beyond that: sub-spaces own nothing else.
func (r *SubSpaceRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE target_kind = 'SUB_SPACE' AND target_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM sub_spaces WHERE id = ?`, id); err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrSubSpaceNotFound
		return err
	}
	return tx.Commit()
}
