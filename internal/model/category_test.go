package model

import "testing"

func TestBuiltinCategories_ReturnsCopy(t *testing.T) {
	a := BuiltinCategories()
	a[0].Name = "mutated"
	b := BuiltinCategories()
	if b[0].Name == "mutated" {
		t.Fatal("BuiltinCategories must not expose the shared backing array")
	}
}

func TestMergeCategories_BuiltinsFirstThenCustoms(t *testing.T) {
	builtins := BuiltinCategories()
	customs := []Category{
		{ID: "c-1", Name: "VIP", Kind: CategoryPublic},
		{ID: "c-2", Name: "Spa", Kind: CategoryPublic},
	}

	merged := MergeCategories(builtins, customs)
	if len(merged) != len(builtins)+2 {
		t.Fatalf("merged length = %d, want %d", len(merged), len(builtins)+2)
	}
	for i, b := range builtins {
		if merged[i].ID != b.ID {
			t.Errorf("position %d: expected builtin %q, got %q", i, b.ID, merged[i].ID)
		}
		if merged[i].IsCustom {
			t.Errorf("builtin %q flagged custom", b.ID)
		}
	}
	// Customs keep arrival order after every builtin.
	if merged[len(builtins)].ID != "c-1" || merged[len(builtins)+1].ID != "c-2" {
		t.Errorf("customs out of order: %q then %q", merged[len(builtins)].ID, merged[len(builtins)+1].ID)
	}
	for _, c := range merged[len(builtins):] {
		if !c.IsCustom {
			t.Errorf("custom %q not flagged custom", c.ID)
		}
	}
}

func TestMergeCategories_SkipsBuiltinIDCollision(t *testing.T) {
	builtins := BuiltinCategories()
	customs := []Category{
		{ID: "public_client", Name: "Imposter", Kind: CategoryPublic},
		{ID: "c-1", Name: "VIP", Kind: CategoryPublic},
	}

	merged := MergeCategories(builtins, customs)
	if len(merged) != len(builtins)+1 {
		t.Fatalf("merged length = %d, want %d (collision skipped)", len(merged), len(builtins)+1)
	}
	for _, c := range merged {
		if c.ID == "public_client" && c.Name == "Imposter" {
			t.Fatal("custom row shadowing a builtin id must be skipped")
		}
	}
}

func TestIsBuiltinCategoryID(t *testing.T) {
	if !IsBuiltinCategoryID("public_client") {
		t.Error("public_client is a builtin")
	}
	if IsBuiltinCategoryID("c-1") {
		t.Error("c-1 is not a builtin")
	}
}
