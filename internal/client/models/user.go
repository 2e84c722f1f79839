// Package models defines client-side data models used by the session core.
package models

import "strings"

// User is an authenticated identity as returned by the remote authenticator
// and mirrored into the secure storage namespace.
//
// Only ID and Username are guaranteed; every other field may be empty.
// Timestamps are ISO-8601 strings exactly as the authenticator sent them.
type User struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	Role            string `json:"role,omitempty"`
	IsEmailVerified bool   `json:"isEmailVerified"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Valid reports whether the record carries the fields every User must have.
func (u *User) Valid() bool {
	return u != nil && strings.TrimSpace(u.ID) != "" && strings.TrimSpace(u.Username) != ""
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if full != "" {
		return full
	}
	return u.Username
}
