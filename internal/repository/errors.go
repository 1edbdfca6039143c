// Package repository defines the storage access layer and the sentinel
// errors handlers use to pick HTTP status codes.
package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
// Handlers translate this into a 404 response.
var ErrNotFound = errors.New("not found")

// ErrManualOverride is returned when a write would replace manually
// entered popularity data with generated data. Handlers translate this
// into a 409 response.
var ErrManualOverride = errors.New("manual popularity data cannot be overwritten")

// ErrUpstream wraps storage failures so callers can distinguish an
// unavailable backing store from caller errors. The core performs no
// retries; a failed snapshot fails the whole aggregation.
var ErrUpstream = errors.New("upstream storage unavailable")
