// This file implements the category registry: the fixed built-in set
// merged with user-defined categories persisted in space_categories.
// There is no update or delete for categories.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/iliyamo/facility-ops/internal/model"
)

// ErrCategoryNotFound is returned when a category id resolves to
// neither a built-in nor a custom row.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepo encapsulates access to custom space categories and
// exposes the merged registry view.
type CategoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo constructs a CategoryRepo with the provided DB handle.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// ListCustom returns the persisted custom categories in creation order.
func (r *CategoryRepo) ListCustom(ctx context.Context) ([]model.Category, error) {
	const q = `SELECT id, name, kind, color, icon, created_at
	           FROM space_categories ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var (
			c    model.Category
			kind string
		)
		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.Color, &c.Icon, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Kind = model.CategoryKind(kind)
		c.IsCustom = true
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll returns the full registry: built-ins first in their fixed
// order, then customs in creation order.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	customs, err := r.ListCustom(ctx)
	if err != nil {
		return nil, err
	}
	return model.MergeCategories(model.BuiltinCategories(), customs), nil
}

// Create validates and persists a custom category. The id is a fresh
// uuid, which keeps custom ids disjoint from the built-in constants.
// The new category shows up after all built-ins in the next ListAll.
func (r *CategoryRepo) Create(ctx context.Context, c *model.Category) error {
	if err := model.ValidateCategory(c); err != nil {
		return err
	}
	c.ID = uuid.NewString()
	c.IsCustom = true
	const qInsert = `INSERT INTO space_categories (id, name, kind, color, icon) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, qInsert, c.ID, c.Name, string(c.Kind), c.Color, c.Icon); err != nil {
		return err
	}
	const qSelect = `SELECT created_at FROM space_categories WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, c.ID).Scan(&c.CreatedAt)
}

// Exists reports whether id names a built-in or custom category. It
// is used to validate space.category_id references before writes.
func (r *CategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	if model.IsBuiltinCategoryID(id) {
		return true, nil
	}
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM space_categories WHERE id = ?`, id).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
