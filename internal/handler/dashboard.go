package handler // handler package contains the admin dashboard handler

import (
    "context"
    "net/http"

    "github.com/iliyamo/facility-ops/internal/view"
    "github.com/labstack/echo/v4"
)

// statsCache memoizes the dashboard derivation per snapshot version.
// One process-wide cache is enough: stats are a pure function of the
// current store contents.
var statsCache view.StatsCache

// statsVersion sums the four collection versions. Versions only ever
// grow, so the sum moves exactly when any of them changed.
func (h *FacilityHandler) statsVersion() uint64 {
    return h.Hub.Version(colSpaces) + h.Hub.Version(colSubSpaces) +
        h.Hub.Version(colCategories) + h.Hub.Version(colAssignments)
}

// loadStats reads the four collections and derives the dashboard
// summary. The version is sampled before and after the reads: only a
// stable window is cached, so a mutation landing between the reads
// can never pin pre-mutation rows under the post-mutation version.
func (h *FacilityHandler) loadStats(ctx context.Context) (view.Stats, uint64, error) {
    before := h.statsVersion()
    spaces, err := h.Spaces.ListAll(ctx)
    if err != nil {
        return view.Stats{}, 0, err
    }
    categories, err := h.Categories.ListAll(ctx)
    if err != nil {
        return view.Stats{}, 0, err
    }
    subCount, err := h.SubSpaces.CountAll(ctx)
    if err != nil {
        return view.Stats{}, 0, err
    }
    assignCount, err := h.Assignments.CountAll(ctx)
    if err != nil {
        return view.Stats{}, 0, err
    }
    after := h.statsVersion()
    stats := statsCache.Reconcile(before, after, func() view.Stats {
        return view.ComputeStats(spaces, categories, subCount, assignCount)
    })
    return stats, after, nil
}

// DashboardStats handles GET /v1/dashboard/stats: parent spaces split
// by category kind, sub-space total and assignment total. The
// derivation reruns only when one of the underlying collections has
// changed since the last call; otherwise the memoized value is served.
func (h *FacilityHandler) DashboardStats(c echo.Context) error {
    stats, _, err := h.loadStats(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    return c.JSON(http.StatusOK, stats)
}
