package models

import "time"

// RefreshToken is an opaque token issued next to an access token.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
