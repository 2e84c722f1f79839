package guard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// Navigator is the UI-side navigation the guard drives. The guard only ever
// replaces the current location and never pushes.
type Navigator interface {
	Location() string
	Replace(path string)
}

// Source is a store the guard can observe.
type Source interface {
	State() session.State
	Subscribe(fn func(session.State)) func()
}

type Guard struct {
	routes Routes
	nav    Navigator
	logger logging.Logger

	mu   sync.Mutex
	last session.State
}

func New(routes Routes, nav Navigator, logger logging.Logger) *Guard {
	return &Guard{routes: routes, nav: nav, logger: logger.With("module", "guard")}
}

// Attach evaluates the current state of src and then every state it commits.
// Store commits carry no context of their own, so redirects they trigger are
// logged under ctx.
func (g *Guard) Attach(ctx context.Context, src Source) func() {
	detach := src.Subscribe(func(st session.State) { g.Evaluate(ctx, st) })
	g.Evaluate(ctx, src.State())
	return detach
}

// Evaluate applies the routing decision for st at the current location.
func (g *Guard) Evaluate(ctx context.Context, st session.State) {
	g.mu.Lock()
	g.last = st
	g.mu.Unlock()
	g.apply(ctx, st)
}

// LocationChanged re-runs the decision for the last seen state.
func (g *Guard) LocationChanged(ctx context.Context) {
	g.mu.Lock()
	st := g.last
	g.mu.Unlock()
	g.apply(ctx, st)
}

func (g *Guard) apply(ctx context.Context, st session.State) {
	from := g.nav.Location()
	target, ok := g.routes.Decide(st.User, st.IsLoading, from)
	if !ok || target == from {
		return
	}
	g.logger.Debug(ctx, "redirect", "from", from, "to", target)
	g.nav.Replace(target)
}
