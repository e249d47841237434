package router

import (
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/facility-ops/internal/handler"
	"github.com/iliyamo/facility-ops/internal/repository"
	"github.com/iliyamo/facility-ops/internal/watch"
)

func TestRegisterFacilityRegistersFullRouteTable(t *testing.T) {
	e := echo.New()
	f := handler.NewFacilityHandler(
		repository.NewSpaceRepo(nil),
		repository.NewSubSpaceRepo(nil),
		repository.NewCategoryRepo(nil),
		repository.NewAssignmentRepo(nil),
		repository.NewEmployeeRepo(nil),
		watch.NewHub(),
	)
	RegisterFacility(e, f, "secret")

	got := make(map[string]bool)
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /v1/spaces",
		"GET /v1/spaces/:id",
		"GET /v1/spaces/:id/sub-spaces",
		"GET /v1/spaces/:id/assignments",
		"GET /v1/sub-spaces/:id/assignments",
		"GET /v1/categories",
		"GET /v1/employees",
		"GET /v1/dashboard/stats",
		"GET /v1/stream/spaces",
		"GET /v1/stream/sub-spaces",
		"GET /v1/stream/categories",
		"GET /v1/stream/stats",
		"POST /v1/spaces/:id/assignments",
		"POST /v1/sub-spaces/:id/assignments",
		"DELETE /v1/assignments/:id",
		"POST /v1/spaces",
		"PUT /v1/spaces/:id",
		"DELETE /v1/spaces/:id",
		"POST /v1/sub-spaces",
		"PUT /v1/sub-spaces/:id",
		"DELETE /v1/sub-spaces/:id",
		"POST /v1/categories",
	}
	for _, w := range want {
		if !got[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}

func TestRegisterReclamationsRoutes(t *testing.T) {
	e := echo.New()
	r := handler.NewReclamationHandler(repository.NewReclamationRepo(nil), "")
	RegisterReclamations(e, r, "secret")

	got := make(map[string]bool)
	for _, rt := range e.Routes() {
		got[rt.Method+" "+rt.Path] = true
	}
	for _, w := range []string{"POST /v1/reclamations", "GET /v1/reclamations"} {
		if !got[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}
