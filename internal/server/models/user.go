package models

import "time"

// User is an account as stored by the authenticator. The password itself is
// never stored; Verifier is derived from it and Salt.
type User struct {
	ID            string
	UserName      string
	Email         string
	FirstName     string
	LastName      string
	Avatar        string
	Role          string
	EmailVerified bool
	Salt          []byte
	Verifier      []byte
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
