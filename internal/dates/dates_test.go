package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalStringPassesThrough(t *testing.T) {
	got, err := Canonicalize("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)
}

func TestTimestampTruncatedToDate(t *testing.T) {
	got, err := Canonicalize("2024-03-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)
}

func TestTimeValueFormattedInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	// 01:30 on the 16th in UTC+11 is still the 15th in UTC.
	got, err := Canonicalize(time.Date(2024, 3, 16, 1, 30, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)
}

func TestSlashLayouts(t *testing.T) {
	got, err := Canonicalize("2024/03/15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", got)
}

func TestUnparseableFallsBackToToday(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	got, err := Canonicalize("not a date")
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Equal(t, "2024-06-01", got, "fallback is degraded but defined")

	got, err = Canonicalize(42)
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Equal(t, "2024-06-01", got)

	got, err = Canonicalize((*time.Time)(nil))
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Equal(t, "2024-06-01", got)
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	inputs := []any{
		"2024-03-15",
		"2024-03-15T10:00:00Z",
		"garbage",
		time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	for _, in := range inputs {
		once, _ := Canonicalize(in)
		twice, _ := Canonicalize(once)
		assert.Equal(t, once, twice, "input %v", in)
		assert.True(t, IsCanonical(once), "input %v", in)
	}
}
