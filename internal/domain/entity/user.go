// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
)

// User is the slice of an account the notification core needs.
type User struct {
	ID       uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Name     string    // The user's display name.
	Timezone string    // IANA timezone name; empty means the configured default.
}
