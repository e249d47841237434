package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/facility-ops/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/facility-ops/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check used by
// load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login and the two refresh variants.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts either a bearer token (revoke all sessions) or a
	// refresh token in the body (revoke one session), so it lives
	// outside the JWT middleware.
	g.POST("/logout", a.Logout)
	e.POST("/v1/logout", a.Logout)

	// Protected identity endpoint.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("ADMIN", "STAFF"))
	auth.GET("/me", a.Me)
}

// RegisterFacility registers the space hierarchy, category registry,
// assignment ledger, staff directory, dashboard and live stream
// endpoints.  Every route requires a valid access token; structural
// mutations (spaces, sub-spaces, categories) additionally require the
// ADMIN role, while reads and assignment handling are open to both
// roles so staff can work their own task lists.
func RegisterFacility(e *echo.Echo, f *handler.FacilityHandler, jwtSecret string) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole("ADMIN", "STAFF"))

	// Reads available to both roles.
	v1.GET("/spaces", f.ListSpaces)
	v1.GET("/spaces/:id", f.GetSpace)
	v1.GET("/spaces/:id/sub-spaces", f.ListSubSpaces)
	v1.GET("/spaces/:id/assignments", f.ListSpaceAssignments)
	v1.GET("/sub-spaces/:id/assignments", f.ListSubSpaceAssignments)
	v1.GET("/categories", f.ListCategories)
	v1.GET("/employees", f.ListEmployees)
	v1.GET("/dashboard/stats", f.DashboardStats)

	// Live snapshot streams (SSE).
	v1.GET("/stream/spaces", f.StreamSpaces)
	v1.GET("/stream/sub-spaces", f.StreamSubSpaces)
	v1.GET("/stream/categories", f.StreamCategories)
	v1.GET("/stream/stats", f.StreamStats)

	// Assignment handling is part of day-to-day operations for both roles.
	v1.POST("/spaces/:id/assignments", f.AssignToSpace)
	v1.POST("/sub-spaces/:id/assignments", f.AssignToSubSpace)
	v1.DELETE("/assignments/:id", f.Unassign)

	// Structural mutations are admin-only.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/spaces", f.CreateSpace)
	admin.PUT("/spaces/:id", f.UpdateSpace)
	admin.DELETE("/spaces/:id", f.DeleteSpace)
	admin.POST("/sub-spaces", f.CreateSubSpace)
	admin.PUT("/sub-spaces/:id", f.UpdateSubSpace)
	admin.DELETE("/sub-spaces/:id", f.DeleteSubSpace)
	admin.POST("/categories", f.CreateCategory)
}

// RegisterReclamations registers maintenance ticket intake and the
// admin listing.  Intake is open to both roles: any staff member can
// raise a ticket against a room.
func RegisterReclamations(e *echo.Echo, r *handler.ReclamationHandler, jwtSecret string) {
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	v1.Use(middleware.RequireRole("ADMIN", "STAFF"))
	v1.POST("/reclamations", r.Submit)

	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.GET("/reclamations", r.List)
}
