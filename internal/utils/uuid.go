// Package utils provides small helpers shared across the application.
package utils

import "github.com/google/uuid"

// NewID returns a new opaque identifier. UUIDv7 is preferred so identifiers
// sort roughly by creation time; on the (practically impossible) v7 failure
// a random v4 is returned instead.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
