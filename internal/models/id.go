package models

import (
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. Systems accept a Clock so tests can
// control timestamps.
type Clock func() time.Time

// SystemClock returns the current wall-clock time in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// NewID returns a random UUIDv4 string.
func NewID() string {
	return uuid.NewString()
}
