// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios without inspecting
// driver-specific error strings.
package repository

import "errors"

// ErrNotFound is returned when an entity does not exist for a given key.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert would violate the unique email
// constraint. Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")
