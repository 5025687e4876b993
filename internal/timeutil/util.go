// Package timeutil converts times to the Unix seconds representation used in
// token claims.
package timeutil

import (
	"time"
)

// Timestamp returns the whole seconds elapsed since the Unix epoch, rounded
// down.
func Timestamp(t time.Time) int {
	return int(t.Unix())
}

func Now() time.Time {
	return time.Now().UTC()
}
