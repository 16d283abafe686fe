package session

import "errors"

var (
	// ErrNoUser indicates a profile operation was attempted while no user
	// is signed in. No request is sent in that case.
	ErrNoUser = errors.New("No user found")

	// ErrAlreadyInitialized indicates Initialize was called more than once.
	ErrAlreadyInitialized = errors.New("session.already_initialized")

	// ErrSuperseded indicates a response arrived after a newer operation
	// had already begun, so its result was discarded instead of
	// overwriting fresher state.
	ErrSuperseded = errors.New("session.superseded")
)
