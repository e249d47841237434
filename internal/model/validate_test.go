package model

import (
	"errors"
	"testing"
)

func TestValidateSpace(t *testing.T) {
	valid := Space{Name: "Étage 1", Kind: SpaceFloor, CategoryID: "public_client"}

	tests := []struct {
		name    string
		mutate  func(*Space)
		wantErr string // empty means valid
	}{
		{"valid", func(s *Space) {}, ""},
		{"empty name", func(s *Space) { s.Name = "" }, "name"},
		{"whitespace name", func(s *Space) { s.Name = "   " }, "name"},
		{"missing category", func(s *Space) { s.CategoryID = "" }, "category_id"},
		{"bad kind", func(s *Space) { s.Kind = "PENTHOUSE" }, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := ValidateSpace(&s)
			checkValidation(t, err, tt.wantErr)
		})
	}
}

func TestValidateSubSpace(t *testing.T) {
	valid := SubSpace{SpaceID: 1, Number: "101", Status: SubSpaceFree}

	tests := []struct {
		name    string
		mutate  func(*SubSpace)
		wantErr string
	}{
		{"valid", func(s *SubSpace) {}, ""},
		{"missing space", func(s *SubSpace) { s.SpaceID = 0 }, "space_id"},
		{"empty number", func(s *SubSpace) { s.Number = " " }, "number"},
		{"bad status", func(s *SubSpace) { s.Status = "BROKEN" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			checkValidation(t, ValidateSubSpace(&s), tt.wantErr)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		cat     Category
		wantErr string
	}{
		{"valid", Category{Name: "VIP", Kind: CategoryPublic, Color: "#3B82F6", Icon: "🏢"}, ""},
		{"empty name", Category{Name: "", Kind: CategoryPublic}, "name"},
		{"bad kind", Category{Name: "VIP", Kind: "INTERNAL"}, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkValidation(t, ValidateCategory(&tt.cat), tt.wantErr)
		})
	}
}

func TestValidateDraft(t *testing.T) {
	valid := ReclamationDraft{RoomNumber: "204", Service: "plomberie", Urgency: UrgencyHigh}

	tests := []struct {
		name    string
		mutate  func(*ReclamationDraft)
		wantErr string
	}{
		{"valid", func(d *ReclamationDraft) {}, ""},
		{"empty room", func(d *ReclamationDraft) { d.RoomNumber = "" }, "room_number"},
		{"empty service", func(d *ReclamationDraft) { d.Service = "" }, "service"},
		{"missing urgency", func(d *ReclamationDraft) { d.Urgency = "" }, "urgency"},
		{"unknown urgency", func(d *ReclamationDraft) { d.Urgency = "PANIC" }, "urgency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			checkValidation(t, ValidateDraft(&d), tt.wantErr)
		})
	}
}

func TestValidateDraft_OptionalFields(t *testing.T) {
	desc := "fuite sous le lavabo"
	photo := "file:///tmp/p.jpg"
	d := ReclamationDraft{
		RoomNumber:  "204",
		Service:     "plomberie",
		Urgency:     UrgencyCritical,
		Description: &desc,
		PhotoURI:    &photo,
	}
	if err := ValidateDraft(&d); err != nil {
		t.Fatalf("draft with optional fields must validate, got %v", err)
	}
}

func TestValidateAssignment(t *testing.T) {
	valid := Assignment{
		TargetKind: TargetSpace,
		TargetID:   3,
		EmployeeID: 9,
		TaskType:   "nettoyage",
		StartDate:  "2026-09-01",
	}

	tests := []struct {
		name    string
		mutate  func(*Assignment)
		wantErr string
	}{
		{"valid", func(a *Assignment) {}, ""},
		{"bad target kind", func(a *Assignment) { a.TargetKind = "ROOF" }, "target_kind"},
		{"missing target", func(a *Assignment) { a.TargetID = 0 }, "target_id"},
		{"missing employee", func(a *Assignment) { a.EmployeeID = 0 }, "employee_id"},
		{"missing task", func(a *Assignment) { a.TaskType = "" }, "task_type"},
		{"missing start date", func(a *Assignment) { a.StartDate = "" }, "start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			checkValidation(t, ValidateAssignment(&a), tt.wantErr)
		})
	}
}

// checkValidation asserts that err is nil when wantField is empty and
// otherwise a *ValidationError naming the expected field.
func checkValidation(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if verr.Field != wantField {
		t.Errorf("error field = %q, want %q", verr.Field, wantField)
	}
}
