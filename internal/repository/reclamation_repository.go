// This file persists reclamations (maintenance tickets). Intake
// validates first, stores with a uuid reference and server timestamp,
// and the handler then forwards the stored ticket to the message
// queue for downstream processing.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrReclamationNotFound is returned when a reclamation id does not exist.
var ErrReclamationNotFound = errors.New("reclamation not found")

// ReclamationRepo encapsulates ticket persistence.
type ReclamationRepo struct {
	db *sql.DB
}

// NewReclamationRepo constructs a ReclamationRepo with the provided DB handle.
func NewReclamationRepo(db *sql.DB) *ReclamationRepo {
	return &ReclamationRepo{db: db}
}

// Create validates the draft and persists it. On success the returned
// reclamation carries the generated id, a fresh uuid reference, the
// OPEN status and the server-side submission timestamp. submittedBy
// is the reporting account; zero is stored as NULL. A draft that
// fails validation never reaches the store.
func (r *ReclamationRepo) Create(ctx context.Context, d *model.ReclamationDraft, submittedBy uint64) (*model.Reclamation, error) {
	if err := model.ValidateDraft(d); err != nil {
		return nil, err
	}

	rec := &model.Reclamation{
		Reference:   uuid.NewString(),
		RoomNumber:  d.RoomNumber,
		Service:     d.Service,
		Urgency:     d.Urgency,
		Description: d.Description,
		PhotoURI:    d.PhotoURI,
		PhotoBase64: d.PhotoBase64,
		Status:      "OPEN",
		SubmittedBy: submittedBy,
	}

	var desc, photoURI, photoB64 sql.NullString
	if rec.Description != nil {
		desc = sql.NullString{String: *rec.Description, Valid: true}
	}
	if rec.PhotoURI != nil {
		photoURI = sql.NullString{String: *rec.PhotoURI, Valid: true}
	}
	if rec.PhotoBase64 != nil {
		photoB64 = sql.NullString{String: *rec.PhotoBase64, Valid: true}
	}
	var by sql.NullInt64
	if submittedBy != 0 {
		by = sql.NullInt64{Int64: int64(submittedBy), Valid: true}
	}

	const qInsert = `INSERT INTO reclamations
	                 (reference, room_number, service, urgency, description, photo_uri, photo_base64, status, submitted_by)
	                 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		rec.Reference, rec.RoomNumber, rec.Service, string(rec.Urgency), desc, photoURI, photoB64, rec.Status, by)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	rec.ID = uint64(id)

	const qSelect = `SELECT submitted_at FROM reclamations WHERE id = ?`
	if err := r.db.QueryRowContext(ctx, qSelect, rec.ID).Scan(&rec.SubmittedAt); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListAll returns every reclamation, newest first, for the back
// office view. Photo payloads are omitted to keep the listing light.
func (r *ReclamationRepo) ListAll(ctx context.Context) ([]*model.Reclamation, error) {
	const q = `SELECT id, reference, room_number, service, urgency, description, status, submitted_by, submitted_at
	           FROM reclamations ORDER BY submitted_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Reclamation
	for rows.Next() {
		var (
			rec     model.Reclamation
			urgency string
			desc    sql.NullString
			by      sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Reference, &rec.RoomNumber, &rec.Service, &urgency, &desc, &rec.Status, &by, &rec.SubmittedAt); err != nil {
			return nil, err
		}
		rec.Urgency = model.Urgency(urgency)
		if desc.Valid {
			rec.Description = &desc.String
		}
		if by.Valid {
			rec.SubmittedBy = uint64(by.Int64)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
