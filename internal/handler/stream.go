package handler // handler package contains the live snapshot stream handlers

import (
    "encoding/json"
    "fmt"
    "net/http"

    "github.com/iliyamo/facility-ops/internal/watch"
    "github.com/labstack/echo/v4"
)

// streamCollection relays hub snapshots for one collection over
// Server-Sent Events. Each event is a full snapshot, never a diff:
// the client replaces its whole view on every message, exactly like
// the hosted store's live queries it stands in for. The subscription
// is canceled exactly once when the client goes away, and nothing is
// delivered after that.
func (h *FacilityHandler) streamCollection(c echo.Context, collection string, initial func(echo.Context) (any, error)) error {
    res := c.Response()
    res.Header().Set(echo.HeaderContentType, "text/event-stream")
    res.Header().Set(echo.HeaderCacheControl, "no-cache")
    res.Header().Set(echo.HeaderConnection, "keep-alive")
    res.WriteHeader(http.StatusOK)

    sub := h.Hub.Subscribe(collection)
    defer sub.Cancel()

    // Seed the client with the current contents so it does not have
    // to wait for the first mutation.
    if initial != nil {
        items, err := initial(c)
        if err != nil {
            return writeError(c, err)
        }
        if err := writeSSE(res, watch.Snapshot{Collection: collection, Version: h.Hub.Version(collection), Items: items}); err != nil {
            return nil
        }
    }

    ctx := c.Request().Context()
    for {
        select {
        case <-ctx.Done():
            return nil
        case snap, ok := <-sub.C:
            if !ok {
                return nil
            }
            if err := writeSSE(res, snap); err != nil {
                return nil // client hung up; Cancel runs via defer
            }
        }
    }
}

// writeSSE emits one snapshot as a data-only SSE frame and flushes.
func writeSSE(res *echo.Response, snap watch.Snapshot) error {
    payload, err := json.Marshal(snap)
    if err != nil {
        return err
    }
    if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
        return err
    }
    res.Flush()
    return nil
}

// StreamSpaces handles GET /v1/stream/spaces.
func (h *FacilityHandler) StreamSpaces(c echo.Context) error {
    return h.streamCollection(c, colSpaces, func(c echo.Context) (any, error) {
        return h.Spaces.ListAll(c.Request().Context())
    })
}

// StreamSubSpaces handles GET /v1/stream/sub-spaces.
func (h *FacilityHandler) StreamSubSpaces(c echo.Context) error {
    return h.streamCollection(c, colSubSpaces, func(c echo.Context) (any, error) {
        return h.SubSpaces.ListAll(c.Request().Context())
    })
}

// StreamCategories handles GET /v1/stream/categories.
func (h *FacilityHandler) StreamCategories(c echo.Context) error {
    return h.streamCollection(c, colCategories, func(c echo.Context) (any, error) {
        return h.Categories.ListAll(c.Request().Context())
    })
}

// statsStream labels the derived dashboard frames; it is not a store
// collection.
const statsStream = "stats"

// StreamStats handles GET /v1/stream/stats: a derived stream that
// re-emits the dashboard summary whenever any of the four underlying
// collections changes. Frames carry the summed collection version so
// a reconnecting client can discard seeds older than what it has.
func (h *FacilityHandler) StreamStats(c echo.Context) error {
    res := c.Response()
    res.Header().Set(echo.HeaderContentType, "text/event-stream")
    res.Header().Set(echo.HeaderCacheControl, "no-cache")
    res.Header().Set(echo.HeaderConnection, "keep-alive")
    res.WriteHeader(http.StatusOK)

    subs := [...]*watch.Subscription{
        h.Hub.Subscribe(colSpaces),
        h.Hub.Subscribe(colSubSpaces),
        h.Hub.Subscribe(colCategories),
        h.Hub.Subscribe(colAssignments),
    }
    defer func() {
        for _, s := range subs {
            s.Cancel()
        }
    }()

    // Seed with the current summary.
    if err := h.emitStats(c); err != nil {
        return nil
    }

    ctx := c.Request().Context()
    for {
        // The snapshot contents are irrelevant here; any delivery is a
        // change signal and the summary is re-derived from the store.
        select {
        case <-ctx.Done():
            return nil
        case _, ok := <-subs[0].C:
            if !ok {
                return nil
            }
        case _, ok := <-subs[1].C:
            if !ok {
                return nil
            }
        case _, ok := <-subs[2].C:
            if !ok {
                return nil
            }
        case _, ok := <-subs[3].C:
            if !ok {
                return nil
            }
        }
        if err := h.emitStats(c); err != nil {
            return nil // client hung up or the store failed; Cancel runs via defer
        }
    }
}

// emitStats writes one dashboard summary frame.
func (h *FacilityHandler) emitStats(c echo.Context) error {
    stats, version, err := h.loadStats(c.Request().Context())
    if err != nil {
        return err
    }
    return writeSSE(c.Response(), watch.Snapshot{Collection: statsStream, Version: version, Items: stats})
}
