// Package credentials owns the persisted bearer credential slot for the
// HealthLens client.
//
// Exactly one opaque token is stored at a time. The session store is the only
// writer; the API client borrows the token per request through a read-only
// TokenSource and never mutates it. Absence of a stored token is the sole
// marker for "logged out / never authenticated".
//
// Two implementations ship out of the box: FileStore persists the token in a
// 0600 file under the user's config directory (survives restarts),
// MemoryStore keeps it in process memory for tests.
//
// Usage:
//
//	path, _ := credentials.DefaultCredentialFile("healthlens")
//	store := credentials.NewFileStore(path)
//
//	if err := store.Save(token); err != nil { ... }
//	token, err := store.Load()
//	if errors.Is(err, credentials.ErrNotFound) {
//	    // logged out
//	}
package credentials
