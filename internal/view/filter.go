// Package view derives read-only presentations from store snapshots:
// filtered space lists, employee search results and dashboard stats.
// Everything here is a pure function over data the repositories or
// the watch hub handed out; nothing in this package mutates state.
package view

import (
	"strings"

	"github.com/iliyamo/facility-ops/internal/model"
)

// CategoryAll is the wildcard category filter value.
const CategoryAll = "all"

// FilterSpaces narrows a space snapshot by name substring and
// category. Both predicates are conjunctive: the name must contain
// term case-insensitively AND the category must match unless the
// filter is CategoryAll. An empty term matches every name. When both
// filters are neutral the input slice is returned as-is, preserving
// store order, so "no filter" behaves identically to no call at all.
func FilterSpaces(all []*model.Space, term, categoryID string) []*model.Space {
	term = strings.ToLower(strings.TrimSpace(term))
	wildcard := categoryID == "" || categoryID == CategoryAll
	if term == "" && wildcard {
		return all
	}
	out := make([]*model.Space, 0, len(all))
	for _, s := range all {
		if term != "" && !strings.Contains(strings.ToLower(s.Name), term) {
			continue
		}
		if !wildcard && s.CategoryID != categoryID {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterEmployees narrows the staff directory by a case-insensitive
// substring match on name OR email. An empty term returns the input
// unchanged (identity, not a copy).
func FilterEmployees(all []*model.Employee, term string) []*model.Employee {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}
	out := make([]*model.Employee, 0, len(all))
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Email), term) {
			out = append(out, e)
		}
	}
	return out
}
