package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iliyamo/facility-ops/internal/model"
	"github.com/iliyamo/facility-ops/internal/repository"
	"github.com/iliyamo/facility-ops/internal/watch"
	"github.com/labstack/echo/v4"
)

// newTestHandler wires a FacilityHandler over repositories with no
// live database. Only request paths that fail before any store call
// may be exercised with it.
func newTestHandler() *FacilityHandler {
	return NewFacilityHandler(
		repository.NewSpaceRepo(nil),
		repository.NewSubSpaceRepo(nil),
		repository.NewCategoryRepo(nil),
		repository.NewAssignmentRepo(nil),
		repository.NewEmployeeRepo(nil),
		watch.NewHub(),
	)
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestCreateSpaceRejectsInvalidBodyBeforeStore(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"category_id":"public_client"}`},
		{"missing category", `{"name":"Étage 1"}`},
		{"unknown kind", `{"name":"Étage 1","kind":"PENTHOUSE","category_id":"public_client"}`},
		{"malformed json", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.CreateSpace, http.MethodPost, "/v1/spaces", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not a JSON object: %v", err)
			}
			if resp["error"] == "" {
				t.Error("missing error message in response")
			}
		})
	}
}

func TestIDRoutesRejectNonNumericID(t *testing.T) {
	h := newTestHandler()

	handlers := map[string]echo.HandlerFunc{
		"get":      h.GetSpace,
		"update":   h.UpdateSpace,
		"delete":   h.DeleteSpace,
		"unassign": h.Unassign,
	}
	for name, fn := range handlers {
		t.Run(name, func(t *testing.T) {
			rec := doJSON(t, fn, http.MethodGet, "/v1/spaces/abc", "{}", map[string]string{"id": "abc"})
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSubmitReclamationRejectsInvalidDraftBeforeStore(t *testing.T) {
	h := NewReclamationHandler(repository.NewReclamationRepo(nil), "")

	tests := []struct {
		name string
		body string
	}{
		{"missing room", `{"service":"plomberie","urgency":"HIGH"}`},
		{"missing service", `{"room_number":"204","urgency":"HIGH"}`},
		{"missing urgency", `{"room_number":"204","service":"plomberie"}`},
		{"unknown urgency", `{"room_number":"204","service":"plomberie","urgency":"PANIC"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h.Submit, http.MethodPost, "/v1/reclamations", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string // the "code" field, empty when absent
	}{
		{"validation", &model.ValidationError{Field: "name"}, http.StatusBadRequest, ""},
		{"space not found", repository.ErrSpaceNotFound, http.StatusNotFound, ""},
		{"wrapped not found", fmt.Errorf("lookup: %w", repository.ErrAssignmentNotFound), http.StatusNotFound, ""},
		{"cascade incomplete", fmt.Errorf("%w: sub_spaces: timeout", repository.ErrCascadeIncomplete), http.StatusConflict, "cascade_incomplete"},
		{"conflict", repository.ErrConflict, http.StatusConflict, ""},
		{"forbidden", repository.ErrForbidden, http.StatusForbidden, ""},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := writeError(c, tt.err); err != nil {
				t.Fatalf("writeError returned error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not a JSON object: %v", err)
			}
			if resp["error"] == "" {
				t.Error("missing error message")
			}
			if resp["code"] != tt.wantCode {
				t.Errorf("code = %q, want %q", resp["code"], tt.wantCode)
			}
		})
	}
}

func TestPublishAssignmentListNeverDeliversNullItems(t *testing.T) {
	h := newTestHandler()
	sub := h.Hub.Subscribe(colAssignments)
	defer sub.Cancel()

	// An empty target has a nil list; subscribers must still see [].
	h.publishAssignmentList(nil)

	select {
	case snap := <-sub.C:
		raw, err := json.Marshal(snap.Items)
		if err != nil {
			t.Fatalf("marshal items: %v", err)
		}
		if string(raw) != "[]" {
			t.Fatalf("items marshaled to %s, want []", raw)
		}
	default:
		t.Fatal("no snapshot delivered")
	}
}

func TestGetUserID(t *testing.T) {
	e := echo.New()
	newCtx := func(v any) echo.Context {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set("user_id", v)
		return c
	}

	for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
		got, err := getUserID(newCtx(v))
		if err != nil || got != 7 {
			t.Errorf("getUserID(%T %v) = %d, %v; want 7, nil", v, v, got, err)
		}
	}
	if _, err := getUserID(newCtx("not-a-number")); err == nil {
		t.Error("expected error for non-numeric string user_id")
	}
	if _, err := getUserID(newCtx(nil)); err == nil {
		t.Error("expected error for absent user_id")
	}
}
