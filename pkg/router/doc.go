// Package router maps navigation paths to page decisions for the HealthLens
// client shell.
//
// Dispatch is an ordered, finite table of routes: a small set of prefix
// rules (anything under /auth is the sign-in screen, anything unrecognized
// under /dashboard lands on the dashboard) plus exact matches for the rest.
// The first matching rule wins and unmatched paths fall back to the public
// landing page, so Resolve can never fail.
//
// Protected routes pass through an access guard backed by the session
// store. While the one-time startup verification is pending, the guard
// suspends rendering instead of redirecting, avoiding a flash of the
// sign-in page for a user whose credential is about to check out. Once
// settled, an unauthenticated visitor gets a redirect decision to /auth
// plus a single error notification; redirects are full navigations so a
// protected view is never mounted for an unauthenticated visitor, even
// transiently.
//
//	r := router.New(sessionStore, router.WithNotifier(center))
//	decision := r.Resolve("/dashboard/uploads")
//	switch decision.Action {
//	case router.ActionRender:   // show decision.Page
//	case router.ActionSuspend:  // show nothing yet
//	case router.ActionRedirect: // navigate to decision.RedirectTo
//	}
//
// Custom tables can be supplied programmatically or loaded from YAML with
// LoadTable.
package router
