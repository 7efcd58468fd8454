package entity

import "time"

// Role is the authorization role of a local user.
type Role string

const (
	RoleUser Role = "USER"
)

// User is a local account projected from an external identity.
// (Provider, ProviderID) uniquely identifies the person across logins;
// repeated logins with the same pair resolve to the same row and update
// only the mutable display fields (name, picture).
type User struct {
	ID         int64
	Name       string
	Email      string
	Picture    string
	Provider   string // Identity provider tag, e.g. "google", "github", "naver".
	ProviderID string // The provider's unique subject id for this person.
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
