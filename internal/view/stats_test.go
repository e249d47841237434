package view

import (
	"testing"

	"github.com/iliyamo/facility-ops/internal/model"
)

func TestComputeStats(t *testing.T) {
	categories := model.BuiltinCategories()
	spaces := []*model.Space{
		space(1, "Étage 1", "public_client"),
		space(2, "Étage 2", "public_common"),
		space(3, "Bureaux RH", "professional_office"),
		space(4, "Mystère", "unknown_category"),
	}

	st := ComputeStats(spaces, categories, 12, 7)

	if st.TotalSpaces != 4 {
		t.Errorf("TotalSpaces = %d, want 4", st.TotalSpaces)
	}
	if st.PublicSpaces != 2 {
		t.Errorf("PublicSpaces = %d, want 2", st.PublicSpaces)
	}
	if st.ProfessionalSpaces != 1 {
		t.Errorf("ProfessionalSpaces = %d, want 1", st.ProfessionalSpaces)
	}
	if st.SubSpaces != 12 {
		t.Errorf("SubSpaces = %d, want 12", st.SubSpaces)
	}
	if st.Assignments != 7 {
		t.Errorf("Assignments = %d, want 7", st.Assignments)
	}
}

func TestComputeStats_CustomCategoriesCount(t *testing.T) {
	categories := model.MergeCategories(model.BuiltinCategories(), []model.Category{
		{ID: "c-1", Name: "VIP", Kind: model.CategoryPublic},
	})
	spaces := []*model.Space{space(1, "Suite VIP", "c-1")}

	st := ComputeStats(spaces, categories, 0, 0)
	if st.PublicSpaces != 1 {
		t.Errorf("PublicSpaces = %d, want 1 (custom public category)", st.PublicSpaces)
	}
}

func TestStatsCache_MemoizesPerVersion(t *testing.T) {
	var cache StatsCache
	calls := 0
	compute := func() Stats {
		calls++
		return Stats{TotalSpaces: calls}
	}

	first := cache.Get(1, compute)
	again := cache.Get(1, compute)
	if calls != 1 {
		t.Fatalf("compute ran %d times for one version, want 1", calls)
	}
	if first != again {
		t.Fatalf("cached value changed between calls")
	}

	// A new version recomputes exactly once.
	cache.Get(2, compute)
	cache.Get(2, compute)
	if calls != 2 {
		t.Fatalf("compute ran %d times across two versions, want 2", calls)
	}

	// Invalidate forces a recompute even for the same version.
	cache.Invalidate()
	cache.Get(2, compute)
	if calls != 3 {
		t.Fatalf("compute ran %d times after invalidate, want 3", calls)
	}
}

func TestStatsCache_ReconcileRefusesTornReads(t *testing.T) {
	var cache StatsCache
	calls := 0
	compute := func() Stats {
		calls++
		return Stats{TotalSpaces: calls}
	}

	// A version that moved during the reads is served but never cached.
	torn := cache.Reconcile(1, 2, compute)
	if calls != 1 {
		t.Fatalf("compute ran %d times for torn read, want 1", calls)
	}
	if torn.TotalSpaces != 1 {
		t.Fatalf("torn read not served fresh: got %+v", torn)
	}

	// The next stable read at version 2 must recompute; the torn
	// result from before never became the memo for version 2.
	stable := cache.Reconcile(2, 2, compute)
	if calls != 2 {
		t.Fatalf("stable read after torn read ran compute %d times, want 2", calls)
	}
	if stable.TotalSpaces != 2 {
		t.Fatalf("stable read served stale result: got %+v", stable)
	}

	// A stable read does memoize.
	cache.Reconcile(2, 2, compute)
	if calls != 2 {
		t.Fatalf("repeat stable read recomputed, calls = %d, want 2", calls)
	}
}
