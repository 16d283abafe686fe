package credentials

import "errors"

var (
	// ErrNotFound indicates no credential is persisted.
	ErrNotFound = errors.New("credentials.not_found")

	// ErrEmptyToken indicates an attempt to save an empty credential.
	ErrEmptyToken = errors.New("credentials.empty_token")

	// ErrStorageFailed indicates the underlying storage operation failed.
	ErrStorageFailed = errors.New("credentials.storage_failed")
)
