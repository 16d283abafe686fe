// Package session owns the client's authentication state: the current user
// identity, the persisted bearer credential, and the lifecycle operations
// that mutate them (initialize, sign in, sign up, sign out, profile update,
// avatar upload).
//
// # Lifecycle
//
// A Store starts loading. Initialize, called exactly once at process start,
// settles the startup state: with no persisted credential it resolves
// immediately to unauthenticated without touching the network; with one it
// verifies via the profile endpoint. Verification failure leaves the user
// absent but keeps the credential, so "could not verify right now" is not
// conflated with an explicit sign-out.
//
//	uninitialized ──Initialize──► unauthenticated ◄──SignOut── authenticated
//	                     │                 │    SignIn/SignUp     ▲
//	                     └─────────────────┴──────────────────────┘
//
// Only an explicit SignOut (or a failed startup verification) demotes the
// session; failures of other calls never do.
//
// # Concurrency
//
// All state lives behind one mutex and is read through immutable Snapshot
// copies. Mutating operations release the lock for the duration of their
// network call and commit through a request-generation counter: if a newer
// operation began in the meantime, the stale response is discarded
// (ErrSuperseded) instead of overwriting fresher state. In-flight calls are
// cancellable through their context.
//
// # Errors
//
// Operations return the backend's *apiclient.APIError or *TransportError
// unchanged; FriendlyMessage classifies any of them into a stable
// human-readable string for display, so the UI layer never needs to inspect
// error internals.
package session
