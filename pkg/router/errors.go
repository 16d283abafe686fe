package router

import "errors"

// ErrInvalidTable indicates a route table file could not be parsed or failed
// validation.
var ErrInvalidTable = errors.New("router.invalid_table")
