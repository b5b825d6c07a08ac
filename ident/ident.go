package ident

import "github.com/google/uuid"

// New returns a fresh opaque identifier for a model entity.
func New() string {
	return uuid.New().String()
}
