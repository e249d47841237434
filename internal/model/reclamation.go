package model

import "time"

// Urgency grades a reclamation from routine to drop-everything.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyMedium   Urgency = "MEDIUM"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// IsValid reports whether the urgency is a known grade.
func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// ReclamationDraft is the intake payload for a maintenance ticket.
// RoomNumber, Service and Urgency are required; description and
// photo are optional.  The photo travels inline as base64 the way
// the mobile client captures it; there is no object storage tier.
type ReclamationDraft struct {
	RoomNumber  string  `json:"room_number"`
	Service     string  `json:"service"`
	Urgency     Urgency `json:"urgency"`
	Description *string `json:"description,omitempty"`
	PhotoURI    *string `json:"photo_uri,omitempty"`
	PhotoBase64 *string `json:"photo_base64,omitempty"`
}

// Reclamation is a persisted ticket.  Reference is the uuid handed
// back to the reporter; Status starts at OPEN and is advanced by the
// back office outside this intake path.  SubmittedBy records the
// account that raised the ticket; zero when the claim was unreadable.
type Reclamation struct {
	ID          uint64    `json:"id"`
	Reference   string    `json:"reference"`
	RoomNumber  string    `json:"room_number"`
	Service     string    `json:"service"`
	Urgency     Urgency   `json:"urgency"`
	Description *string   `json:"description,omitempty"`
	PhotoURI    *string   `json:"photo_uri,omitempty"`
	PhotoBase64 *string   `json:"photo_base64,omitempty"`
	Status      string    `json:"status"`
	SubmittedBy uint64    `json:"submitted_by,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Receipt acknowledges a stored reclamation.  It is all a reporter
// needs to follow up on the ticket.
type Receipt struct {
	ID          uint64    `json:"id"`
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
}
