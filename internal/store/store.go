// Package store holds the sqlx-backed persistence for operation history.
package store

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")
