package handler // handler package contains reclamation intake handlers

import (
    "net/http"
    "time"

    "github.com/iliyamo/facility-ops/internal/model"
    "github.com/iliyamo/facility-ops/internal/queue"
    "github.com/iliyamo/facility-ops/internal/repository"
    queue_publisher "github.com/iliyamo/facility-ops/internal/service"
    "github.com/labstack/echo/v4"
)

// ReclamationHandler bundles ticket persistence with the broker URL
// used to forward stored tickets downstream.
type ReclamationHandler struct {
    Recs    *repository.ReclamationRepo
    AMQPURL string
}

// NewReclamationHandler constructs a ReclamationHandler and panics on
// a nil repository.
func NewReclamationHandler(recs *repository.ReclamationRepo, amqpURL string) *ReclamationHandler {
    if recs == nil {
        panic("nil repository passed to NewReclamationHandler")
    }
    return &ReclamationHandler{Recs: recs, AMQPURL: amqpURL}
}

// Submit handles POST /v1/reclamations. The draft is validated before
// any store call (missing fields are a 400, immediately), persisted
// with a uuid reference, the submitting account and the server
// timestamp, then forwarded to the reclamation.submitted queue. A
// publish failure is logged inside the publisher and deliberately
// ignored here: the ticket is stored and the reporter gets their
// receipt either way. A store failure is relayed verbatim for the
// caller to decide.
func (h *ReclamationHandler) Submit(c echo.Context) error {
    var draft model.ReclamationDraft
    if err := c.Bind(&draft); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    // The route sits behind JWT auth, so the claim is normally present;
    // an unreadable subject just leaves the column empty.
    uid, _ := getUserID(c)
    rec, err := h.Recs.Create(c.Request().Context(), &draft, uid)
    if err != nil {
        return writeError(c, err)
    }

    ev := queue.ReclamationSubmittedEvent{
        ReclamationID: rec.ID,
        Reference:     rec.Reference,
        RoomNumber:    rec.RoomNumber,
        Service:       rec.Service,
        Urgency:       string(rec.Urgency),
        HasPhoto:      rec.PhotoBase64 != nil || rec.PhotoURI != nil,
        SubmittedAt:   rec.SubmittedAt.UTC().Format(time.RFC3339),
    }
    if rec.Description != nil {
        ev.Description = *rec.Description
    }
    _ = queue_publisher.PublishReclamationSubmitted(c.Request().Context(), h.AMQPURL, ev)

    return c.JSON(http.StatusCreated, model.Receipt{
        ID:          rec.ID,
        Reference:   rec.Reference,
        SubmittedAt: rec.SubmittedAt,
    })
}

// List handles GET /v1/reclamations (admin): every ticket, newest
// first, photo payloads omitted.
func (h *ReclamationHandler) List(c echo.Context) error {
    items, err := h.Recs.ListAll(c.Request().Context())
    if err != nil {
        return writeError(c, err)
    }
    if items == nil {
        items = []*model.Reclamation{}
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}
