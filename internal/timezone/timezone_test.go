package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Invalid").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc := Location(DefaultTimezone)
	in := time.Date(2025, time.November, 10, 23, 59, 0, 0, loc)

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2025, time.November, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}
