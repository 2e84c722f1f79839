package session

import "github.com/dmitrijs2005/authshell/internal/client/models"

// State is a snapshot of the session. IsAuthenticated always equals
// User != nil. An empty Error means no error.
type State struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
	Initialized     bool
	Error           string
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (s State) normalized() State {
	s.IsAuthenticated = s.User != nil
	return s
}
