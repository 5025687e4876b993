package timeutil_test

import (
	"testing"
	"time"

	"github.com/luikyv/gotok/internal/timeutil"
)

func TestTimestamp_RoundsDown(t *testing.T) {
	// Given.
	instant := time.Unix(1700000000, int64(999*time.Millisecond))

	// When.
	got := timeutil.Timestamp(instant)

	// Then.
	if got != 1700000000 {
		t.Errorf("Timestamp() = %d, want 1700000000", got)
	}
}

func TestTimestamp_IgnoresTimeZone(t *testing.T) {
	// Given.
	utc := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("UTC-3", -3*60*60))

	// Then.
	if timeutil.Timestamp(utc) != timeutil.Timestamp(local) {
		t.Error("the timestamp should not depend on the time zone")
	}
}
