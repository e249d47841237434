package view

import (
	"sync"

	"github.com/iliyamo/facility-ops/internal/model"
)

// Stats is the dashboard summary: parent spaces split by category
// kind, total sub-spaces and total assignments across the facility.
type Stats struct {
	PublicSpaces       int `json:"public_spaces"`
	ProfessionalSpaces int `json:"professional_spaces"`
	TotalSpaces        int `json:"total_spaces"`
	SubSpaces          int `json:"sub_spaces"`
	Assignments        int `json:"assignments"`
}

// ComputeStats derives the dashboard summary from a space snapshot
// plus the sub-space and assignment totals. categories maps category
// id to kind; spaces with an unknown category count only toward the
// total.
func ComputeStats(spaces []*model.Space, categories []model.Category, subSpaces, assignments int) Stats {
	kinds := make(map[string]model.CategoryKind, len(categories))
	for _, c := range categories {
		kinds[c.ID] = c.Kind
	}
	st := Stats{TotalSpaces: len(spaces), SubSpaces: subSpaces, Assignments: assignments}
	for _, s := range spaces {
		switch kinds[s.CategoryID] {
		case model.CategoryPublic:
			st.PublicSpaces++
		case model.CategoryProfessional:
			st.ProfessionalSpaces++
		}
	}
	return st
}

// StatsCache memoizes the last computed Stats keyed on a snapshot
// version. Recomputation happens only when the version moves, which
// is exactly once per store change delivered by the watch hub.
type StatsCache struct {
	mu      sync.Mutex
	version uint64
	valid   bool
	stats   Stats
}

// Get returns the cached stats when version matches the last call,
// otherwise it runs compute and caches the result under version.
func (c *StatsCache) Get(version uint64, compute func() Stats) Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && c.version == version {
		return c.stats
	}
	c.stats = compute()
	c.version = version
	c.valid = true
	return c.stats
}

// Reconcile caches fresh stats only when the rows were read under a
// stable version (before == after). A mutation landing mid-read can
// mix pre- and post-mutation rows; that result is served to the
// caller but never cached, so the memo key always corresponds to the
// data it was computed from. The next stable read recomputes.
func (c *StatsCache) Reconcile(before, after uint64, compute func() Stats) Stats {
	if before != after {
		return compute()
	}
	return c.Get(after, compute)
}

// Invalidate drops the cached value regardless of version.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
