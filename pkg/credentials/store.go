package credentials

// Store persists a single opaque bearer credential between process runs.
//
// The credential slot is the sole source of truth for "has this client ever
// authenticated": an empty slot means logged out. Implementations must treat
// the token as opaque and never inspect or rewrite it.
type Store interface {
	// Load returns the persisted credential. It returns ErrNotFound when no
	// credential has been saved or it was cleared.
	Load() (string, error)

	// Save persists the credential, replacing any previous value.
	Save(token string) error

	// Clear removes the persisted credential. Clearing an empty slot is not
	// an error.
	Clear() error
}

// TokenSource adapts a Store into a per-request token provider: it returns
// the current credential or "" when none is persisted. The API client
// borrows the token through this without ever owning or mutating it.
func TokenSource(s Store) func() string {
	return func() string {
		token, err := s.Load()
		if err != nil {
			return ""
		}
		return token
	}
}
