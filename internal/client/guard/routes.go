// Package guard keeps the navigation location consistent with the session:
// signed-out users are sent to sign-in and signed-in users are kept out of
// the auth screens.
package guard

import (
	"strings"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

type Area int

const (
	AreaOther Area = iota
	AreaAuth
	AreaMain
)

func (a Area) String() string {
	switch a {
	case AreaAuth:
		return "auth"
	case AreaMain:
		return "main"
	default:
		return "other"
	}
}

// Routes describes the navigation layout the guard enforces.
type Routes struct {
	SignIn     string
	Home       string
	AuthPrefix string
	MainPrefix string
	// Standalone pages a signed-in user may visit outside the main area.
	Standalone []string
}

func DefaultRoutes() Routes {
	return Routes{
		SignIn:     "/(auth)/sign-in",
		Home:       "/(tabs)/home",
		AuthPrefix: "/(auth)",
		MainPrefix: "/(tabs)",
		Standalone: []string{"/modal", "/settings", "/+not-found"},
	}
}

func inArea(location, prefix string) bool {
	if prefix == "" {
		return false
	}
	return location == prefix || strings.HasPrefix(location, prefix+"/")
}

func (r Routes) Classify(location string) Area {
	switch {
	case inArea(location, r.AuthPrefix):
		return AreaAuth
	case inArea(location, r.MainPrefix):
		return AreaMain
	default:
		return AreaOther
	}
}

func (r Routes) standalone(location string) bool {
	for _, p := range r.Standalone {
		if location == p {
			return true
		}
	}
	return false
}

// Decide returns where location must be replaced with, if anywhere.
// Nothing is decided while an operation is loading.
func (r Routes) Decide(user *models.User, loading bool, location string) (string, bool) {
	if loading {
		return "", false
	}

	area := r.Classify(location)
	switch {
	case user == nil && area != AreaAuth:
		return r.SignIn, true
	case user != nil && area == AreaAuth:
		return r.Home, true
	case user != nil && area == AreaOther && !r.standalone(location):
		return r.Home, true
	}
	return "", false
}
