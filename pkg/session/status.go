package session

// Status describes where the store is in its lifecycle.
//
// The machine is: Uninitialized transitions once, at Initialize, to either
// Authenticated (stored credential verified) or Unauthenticated. From there
// SignIn/SignUp promote and only an explicit SignOut demotes; a failing
// mutating call never changes the state on its own. There is no terminal
// state, the store cycles for the process lifetime.
type Status string

const (
	// StatusUninitialized means Initialize has not completed yet.
	StatusUninitialized Status = "uninitialized"
	// StatusUnauthenticated means no verified user is present.
	StatusUnauthenticated Status = "unauthenticated"
	// StatusAuthenticated means a verified user identity is held.
	StatusAuthenticated Status = "authenticated"
)

// Snapshot is an immutable copy of the session state at one point in time.
type Snapshot struct {
	// User is the authenticated identity, or nil.
	User *Identity
	// Loading is true only during the one-time startup credential
	// verification. It never becomes true again afterwards.
	Loading bool
	// Busy is true while a SignUp call is in flight.
	Busy bool
	// Status is the lifecycle state derived from the fields above.
	Status Status
}
