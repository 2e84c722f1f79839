package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrRejected matches any request the authenticator refused as invalid.
	ErrRejected = errors.New("request rejected")
)

// rejection carries the authenticator's own message and matches ErrRejected.
type rejection struct {
	msg string
}

func (r rejection) Error() string {
	return r.msg
}

func (r rejection) Is(target error) bool {
	return target == ErrRejected
}

func rejected(msg string) error {
	return rejection{msg: msg}
}
