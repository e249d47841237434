package model

// Employee mirrors a row of the read-only `employees` staff
// directory.  The directory is seeded by the HR import, never
// written by this service; assignments snapshot the fields they need
// instead of joining against it.
type Employee struct {
	ID    uint64 `json:"id"`
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}
