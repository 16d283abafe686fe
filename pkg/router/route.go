package router

// Page names the view a path resolves to. The HealthLens client renders
// these; the router only decides which one.
type Page string

const (
	PageLanding   Page = "landing"
	PageAbout     Page = "about"
	PageLearnMore Page = "learn-more"
	PageAuth      Page = "auth"
	PageDashboard Page = "dashboard"
	PageUploads   Page = "uploads"
	PageInsights  Page = "insights"
	PageSettings  Page = "settings"
	PageProfile   Page = "profile"
)

// Route is one entry in the dispatch table. Prefix routes match any path
// beginning with Pattern; otherwise the match is exact.
type Route struct {
	Pattern   string `yaml:"pattern"`
	Page      Page   `yaml:"page"`
	Protected bool   `yaml:"protected"`
	Prefix    bool   `yaml:"prefix"`
}

// Action tells the consumer what to do with a resolved path.
type Action string

const (
	// ActionRender means the target page should be rendered.
	ActionRender Action = "render"
	// ActionSuspend means render nothing yet: the startup session
	// verification has not settled, and redirecting now would flash the
	// sign-in page at a user who is about to be authenticated.
	ActionSuspend Action = "suspend"
	// ActionRedirect means perform a full, history-discarding navigation
	// to RedirectTo. A full navigation guarantees no protected view is
	// ever mounted, even transiently, for an unauthenticated visitor.
	ActionRedirect Action = "redirect"
)

// Decision is the outcome of resolving one path. It is recomputed on every
// navigation and never persisted.
type Decision struct {
	Path       string
	Page       Page
	Protected  bool
	Action     Action
	RedirectTo string
}
