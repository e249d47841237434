// Package queue defines message payloads exchanged over the message broker.
package queue

// ReclamationSubmittedEvent is published when a maintenance ticket is
// stored. It carries enough for downstream consumers (intake log,
// notifications, analytics) to act without querying the primary
// database. Photo payloads stay out of the event on purpose: they can
// be megabytes of base64 and the broker is not a blob store.
type ReclamationSubmittedEvent struct {
    ReclamationID uint64 `json:"reclamation_id"`
    Reference     string `json:"reference"`
    RoomNumber    string `json:"room_number"`
    Service       string `json:"service"`
    Urgency       string `json:"urgency"`
    Description   string `json:"description,omitempty"`
    HasPhoto      bool   `json:"has_photo"`
    SubmittedAt   string `json:"submitted_at"`
}
