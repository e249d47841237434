package model

import "time"

// SpaceKind identifies the level of a parent space in the building
// hierarchy.  A space groups sub-spaces (rooms) and is the unit the
// dashboard filters and counts.
type SpaceKind string

const (
	SpaceFloor    SpaceKind = "FLOOR"
	SpaceBuilding SpaceKind = "BUILDING"
	SpaceZone     SpaceKind = "ZONE"
	SpaceWing     SpaceKind = "WING"
)

// IsValid reports whether the kind is one of the known hierarchy levels.
func (k SpaceKind) IsValid() bool {
	switch k {
	case SpaceFloor, SpaceBuilding, SpaceZone, SpaceWing:
		return true
	}
	return false
}

// Space is a floor/building/zone/wing-level container.  Each space
// carries a category and owns zero or more sub-spaces through their
// SpaceID reference.  The space id doubles as the scannable reference
// printed on QR labels, so it is returned to the caller on create.
//
// Fields:
//  ID          – primary key, also the QR reference payload.
//  Name        – required display name.
//  Kind        – hierarchy level (FLOOR, BUILDING, ZONE, WING).
//  Number      – optional ordinal ("1" for first floor); nil when unset.
//  CategoryID  – required category reference (built-in or custom id).
//  Description – optional free text; nil when unset.
//  CreatedAt   – row creation timestamp.
//  UpdatedAt   – last update timestamp.
type Space struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Kind        SpaceKind `json:"kind"`
	Number      *string   `json:"number,omitempty"`
	CategoryID  string    `json:"category_id"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubSpaceStatus tracks room availability for the operations views.
type SubSpaceStatus string

const (
	SubSpaceFree        SubSpaceStatus = "FREE"
	SubSpaceOccupied    SubSpaceStatus = "OCCUPIED"
	SubSpaceMaintenance SubSpaceStatus = "MAINTENANCE"
)

// IsValid reports whether the status is a known value.
func (s SubSpaceStatus) IsValid() bool {
	switch s {
	case SubSpaceFree, SubSpaceOccupied, SubSpaceMaintenance:
		return true
	}
	return false
}

// SubSpace is a room-level unit belonging to exactly one parent
// space.  The SpaceID reference is enforced by the application, not
// by the schema: deleting a parent runs a cascading transaction that
// removes its sub-spaces (see repository.SpaceRepo.DeleteCascade).
//
// Fields:
//  ID        – primary key.
//  SpaceID   – owning parent space.
//  Name      – optional label ("Suite Royale"); nil when the number suffices.
//  Number    – required room number ("101").
//  Kind      – free-form room type ("chambre", "salle de réunion").
//  Area      – optional surface in m²; nil when unknown.
//  Capacity  – optional headcount; nil when unknown.
//  Status    – FREE, OCCUPIED or MAINTENANCE.
//  Equipment – list of equipment tags, stored JSON-encoded.
//  CreatedAt – row creation timestamp.
//  UpdatedAt – last update timestamp.
type SubSpace struct {
	ID        uint64         `json:"id"`
	SpaceID   uint64         `json:"space_id"`
	Name      *string        `json:"name,omitempty"`
	Number    string         `json:"number"`
	Kind      string         `json:"kind"`
	Area      *float64       `json:"area,omitempty"`
	Capacity  *uint32        `json:"capacity,omitempty"`
	Status    SubSpaceStatus `json:"status"`
	Equipment []string       `json:"equipment"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
