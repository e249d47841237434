package model

import "time"

// CategoryKind partitions categories into the two audiences the
// application knows about.  PUBLIC categories describe client-facing
// areas (lobbies, guest floors), PROFESSIONAL categories describe
// back-of-house areas (offices, technical rooms).
type CategoryKind string

const (
	CategoryPublic       CategoryKind = "PUBLIC"       // client-facing areas
	CategoryProfessional CategoryKind = "PROFESSIONAL" // staff/back-of-house areas
)

// IsValid reports whether the kind is one of the two known values.
func (k CategoryKind) IsValid() bool {
	return k == CategoryPublic || k == CategoryProfessional
}

// Category labels a space with a color and an icon.  Built-in
// categories are process-wide constants with fixed string ids;
// custom categories are rows in the `space_categories` table with a
// uuid id.  The registry always lists built-ins first, then customs
// in creation order.
//
// Fields:
//  ID        – stable identifier ("public_client" for built-ins, uuid for customs).
//  Name      – display name.
//  Kind      – PUBLIC or PROFESSIONAL.
//  Color     – hex color used by clients ("#3B82F6").
//  Icon      – emoji or icon token rendered next to the name.
//  IsCustom  – false for built-ins, true for persisted rows.
//  CreatedAt – zero for built-ins, row timestamp for customs.
type Category struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      CategoryKind `json:"kind"`
	Color     string       `json:"color"`
	Icon      string       `json:"icon"`
	IsCustom  bool         `json:"is_custom"`
	CreatedAt time.Time    `json:"created_at,omitzero"`
}

// builtinCategories is the fixed set every deployment starts with.
// Order matters: ListAll returns these first, in this order.
var builtinCategories = []Category{
	{ID: "public_client", Name: "Espace client", Kind: CategoryPublic, Color: "#3B82F6", Icon: "🛎️"},
	{ID: "public_common", Name: "Parties communes", Kind: CategoryPublic, Color: "#10B981", Icon: "🏢"},
	{ID: "public_restaurant", Name: "Restauration", Kind: CategoryPublic, Color: "#F59E0B", Icon: "🍽️"},
	{ID: "professional_office", Name: "Bureaux", Kind: CategoryProfessional, Color: "#6366F1", Icon: "💼"},
	{ID: "professional_technical", Name: "Locaux techniques", Kind: CategoryProfessional, Color: "#EF4444", Icon: "🔧"},
	{ID: "professional_storage", Name: "Stockage", Kind: CategoryProfessional, Color: "#8B5CF6", Icon: "📦"},
}

// BuiltinCategories returns a copy of the built-in set so callers
// cannot mutate the process-wide constants.
func BuiltinCategories() []Category {
	out := make([]Category, len(builtinCategories))
	copy(out, builtinCategories)
	return out
}

// IsBuiltinCategoryID reports whether id belongs to a built-in category.
func IsBuiltinCategoryID(id string) bool {
	for _, c := range builtinCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// MergeCategories concatenates built-ins with custom categories,
// built-ins first.  A custom row whose id collides with a built-in id
// is skipped: built-ins win, the row is unreachable until renamed.
// Custom ids are uuids so the collision arm exists only to make the
// uniqueness invariant explicit.
func MergeCategories(builtins, customs []Category) []Category {
	out := make([]Category, 0, len(builtins)+len(customs))
	out = append(out, builtins...)
	for _, c := range customs {
		if IsBuiltinCategoryID(c.ID) {
			continue
		}
		c.IsCustom = true
		out = append(out, c)
	}
	return out
}
