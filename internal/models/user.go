// Package models defines the data structures held by the content store and
// the identity provider, and provides the core types used throughout the
// application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a user's permission level in the forum.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// CanModerate returns true for roles allowed to edit or remove content they
// do not own.
func (r Role) CanModerate() bool {
	return r == RoleAdmin || r == RoleModerator
}

// User represents a registered forum member. Credentials live only in the
// identity provider; the content store never sees them.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Never serialize the hash
	Role           Role      `json:"role"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	JoinDate       time.Time `json:"join_date"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor returns the identity slice the content store is allowed to see.
func (u *User) Actor() *Actor {
	return &Actor{ID: u.ID, Role: u.Role}
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// Actor is the currently authenticated identity as seen by the content
// store: just an id and a role, no credentials. A nil *Actor means the
// caller is unauthenticated.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}
