package view

import (
	"strings"
	"testing"

	"github.com/iliyamo/facility-ops/internal/model"
)

func space(id uint64, name, categoryID string) *model.Space {
	return &model.Space{ID: id, Name: name, Kind: model.SpaceFloor, CategoryID: categoryID}
}

func spaceFixture() []*model.Space {
	return []*model.Space{
		space(1, "Étage 1", "public_client"),
		space(2, "Étage 2", "public_client"),
		space(3, "Aile Ouest", "professional_office"),
		space(4, "Zone technique", "professional_technical"),
		space(5, "Restaurant", "public_restaurant"),
	}
}

func TestFilterSpaces_NeutralFiltersReturnInputUnchanged(t *testing.T) {
	all := spaceFixture()

	for _, cat := range []string{"", CategoryAll} {
		got := FilterSpaces(all, "", cat)
		if len(got) != len(all) {
			t.Fatalf("expected %d spaces, got %d", len(all), len(got))
		}
		// Identity, not a filtered copy: the exact slice comes back
		// with store order preserved.
		for i := range all {
			if got[i] != all[i] {
				t.Errorf("element %d: expected same pointer in same order", i)
			}
		}
	}
}

func TestFilterSpaces_NameSubstringCaseInsensitive(t *testing.T) {
	all := spaceFixture()

	tests := []struct {
		term string
		want []uint64
	}{
		{"étage", []uint64{1, 2}},
		{"ÉTAGE", []uint64{1, 2}},
		{"ouest", []uint64{3}},
		{"e", []uint64{1, 2, 3, 4, 5}},
		{"nope", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterSpaces(all, tt.term, CategoryAll)
			if len(got) != len(tt.want) {
				t.Fatalf("term %q: expected %d results, got %d", tt.term, len(tt.want), len(got))
			}
			for i, s := range got {
				if s.ID != tt.want[i] {
					t.Errorf("result %d: expected id %d, got %d", i, tt.want[i], s.ID)
				}
				if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(tt.term)) {
					t.Errorf("result %q does not contain term %q", s.Name, tt.term)
				}
			}
		})
	}
}

func TestFilterSpaces_CategoryAndTermAreConjunctive(t *testing.T) {
	all := spaceFixture()

	got := FilterSpaces(all, "étage", "public_client")
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}

	// Matching term but wrong category must be excluded.
	got = FilterSpaces(all, "étage", "professional_office")
	if len(got) != 0 {
		t.Fatalf("expected 0 results, got %d", len(got))
	}

	// Matching category but non-matching term must be excluded.
	got = FilterSpaces(all, "restaurant", "public_client")
	if len(got) != 0 {
		t.Fatalf("expected 0 results, got %d", len(got))
	}

	// Category alone.
	got = FilterSpaces(all, "", "professional_technical")
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected only space 4, got %v", got)
	}
}

func TestFilterEmployees(t *testing.T) {
	all := []*model.Employee{
		{ID: 1, Name: "Marie Dupont", Email: "marie@hotel.example"},
		{ID: 2, Name: "Jean Martin", Email: "jean.martin@hotel.example"},
		{ID: 3, Name: "Sofia Haddad", Email: "s.haddad@hotel.example"},
	}

	// Empty term is the identity, same slice back.
	got := FilterEmployees(all, "")
	if len(got) != 3 || got[0] != all[0] {
		t.Fatalf("empty term must return the input unchanged")
	}

	tests := []struct {
		term string
		want []uint64
	}{
		{"marie", []uint64{1}},         // name match
		{"MARTIN", []uint64{2}},        // case-insensitive
		{"haddad@", []uint64{3}},       // email match
		{"hotel.example", []uint64{1, 2, 3}}, // email domain matches everyone
		{"  jean ", []uint64{2}},       // surrounding whitespace trimmed
		{"ghost", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterEmployees(all, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("term %q: expected %d results, got %d", tt.term, len(tt.want), len(got))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("result %d: expected id %d, got %d", i, tt.want[i], e.ID)
				}
			}
		})
	}
}
