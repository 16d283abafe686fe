package router_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens-go/pkg/notifier"
	"github.com/healthlens/healthlens-go/pkg/router"
	"github.com/healthlens/healthlens-go/pkg/session"
)

// stubSessions serves a fixed snapshot.
type stubSessions struct {
	snap session.Snapshot
}

func (s *stubSessions) Snapshot() session.Snapshot {
	return s.snap
}

func authenticated() *stubSessions {
	return &stubSessions{snap: session.Snapshot{
		User:   &session.Identity{ID: "u1", Name: "Jane", Email: "jane@example.com"},
		Status: session.StatusAuthenticated,
	}}
}

func unauthenticated() *stubSessions {
	return &stubSessions{snap: session.Snapshot{Status: session.StatusUnauthenticated}}
}

func loading() *stubSessions {
	return &stubSessions{snap: session.Snapshot{Loading: true, Status: session.StatusUninitialized}}
}

func TestResolve_PublicRoutes(t *testing.T) {
	t.Parallel()

	r := router.New(unauthenticated())

	tests := []struct {
		path string
		page router.Page
	}{
		{"/", router.PageLanding},
		{"/about", router.PageAbout},
		{"/learn-more", router.PageLearnMore},
		{"/auth", router.PageAuth},
		{"/auth/signup", router.PageAuth},
		{"/nonsense", router.PageLanding},
		{"/about/deeper", router.PageLanding},
		{"", router.PageLanding},
	}

	for _, tt := range tests {
		decision := r.Resolve(tt.path)
		assert.Equal(t, tt.page, decision.Page, "path %q", tt.path)
		assert.Equal(t, router.ActionRender, decision.Action, "path %q", tt.path)
		assert.False(t, decision.Protected, "path %q", tt.path)
	}
}

func TestResolve_ProtectedRoutesAuthenticated(t *testing.T) {
	t.Parallel()

	r := router.New(authenticated())

	tests := []struct {
		path string
		page router.Page
	}{
		{"/dashboard", router.PageDashboard},
		{"/dashboard/uploads", router.PageUploads},
		{"/dashboard/insights", router.PageInsights},
		{"/dashboard/settings", router.PageSettings},
		{"/dashboard/profile", router.PageProfile},
		{"/dashboard/anything-else", router.PageDashboard},
	}

	for _, tt := range tests {
		decision := r.Resolve(tt.path)
		assert.Equal(t, tt.page, decision.Page, "path %q", tt.path)
		assert.Equal(t, router.ActionRender, decision.Action, "path %q", tt.path)
		assert.True(t, decision.Protected, "path %q", tt.path)
	}
}

func TestResolve_UnauthenticatedDashboardRedirects(t *testing.T) {
	t.Parallel()

	center := notifier.NewCenter(notifier.WithDisplayDuration(time.Hour))
	defer center.Close()

	r := router.New(unauthenticated(), router.WithNotifier(center))

	decision := r.Resolve("/dashboard")

	assert.Equal(t, router.ActionRedirect, decision.Action)
	assert.Equal(t, "/auth", decision.RedirectTo)

	// Exactly one error-severity notification is emitted.
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, notifier.SeverityError, active[0].Severity)
	assert.Equal(t, "Please sign in to access this page", active[0].Message)
}

func TestResolve_LoadingSuspendsInsteadOfRedirecting(t *testing.T) {
	t.Parallel()

	center := notifier.NewCenter(notifier.WithDisplayDuration(time.Hour))
	defer center.Close()

	r := router.New(loading(), router.WithNotifier(center))

	decision := r.Resolve("/dashboard/settings")

	assert.Equal(t, router.ActionSuspend, decision.Action)
	assert.Empty(t, decision.RedirectTo)
	assert.Empty(t, center.Active(), "suspension must not emit a notification")
}

func TestResolve_RedirectWithoutNotifierIsSilent(t *testing.T) {
	t.Parallel()

	r := router.New(unauthenticated())

	decision := r.Resolve("/dashboard")
	assert.Equal(t, router.ActionRedirect, decision.Action)
}

func TestResolve_PublicRouteIgnoresSession(t *testing.T) {
	t.Parallel()

	// Even mid-verification, public pages render immediately.
	r := router.New(loading())

	decision := r.Resolve("/about")
	assert.Equal(t, router.ActionRender, decision.Action)
	assert.Equal(t, router.PageAbout, decision.Page)
}
