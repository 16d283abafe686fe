package router

import (
	"github.com/healthlens/healthlens-go/pkg/notifier"
	"github.com/healthlens/healthlens-go/pkg/session"
)

// signInPath is where unauthenticated visitors to protected pages are sent.
const signInPath = "/auth"

// signInNotice is the message shown alongside the redirect.
const signInNotice = "Please sign in to access this page"

// SessionSource provides the current session snapshot. *session.Store
// satisfies it.
type SessionSource interface {
	Snapshot() session.Snapshot
}

// Router resolves navigation paths to page decisions, applying the access
// guard for protected routes against the current session state.
type Router struct {
	table    *Table
	sessions SessionSource
	center   *notifier.Center
}

// Option configures a Router.
type Option func(*Router)

// WithTable replaces the default route table.
func WithTable(table *Table) Option {
	return func(r *Router) {
		if table != nil {
			r.table = table
		}
	}
}

// WithNotifier sets the notification center used to announce guard
// redirects. Without one, redirects are silent.
func WithNotifier(center *notifier.Center) Option {
	return func(r *Router) {
		r.center = center
	}
}

// New creates a router guarded by the given session source.
func New(sessions SessionSource, opts ...Option) *Router {
	r := &Router{
		table:    DefaultTable(),
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps a path to a page decision. It is a pure function of the path
// and the current session snapshot and never fails: unknown paths fall back
// to the public landing page.
//
// For protected routes the guard applies, in order: while the startup
// session verification is still pending the decision is Suspend (render
// nothing, no redirect); once settled, an absent user yields a Redirect to
// the sign-in page and exactly one error notification; otherwise Render.
func (r *Router) Resolve(path string) Decision {
	route := r.table.Match(path)

	decision := Decision{
		Path:      path,
		Page:      route.Page,
		Protected: route.Protected,
		Action:    ActionRender,
	}

	if !route.Protected {
		return decision
	}

	snap := r.sessions.Snapshot()

	if snap.Loading {
		decision.Action = ActionSuspend
		return decision
	}

	if snap.User == nil {
		decision.Action = ActionRedirect
		decision.RedirectTo = signInPath
		if r.center != nil {
			r.center.Error(signInNotice)
		}
		return decision
	}

	return decision
}
