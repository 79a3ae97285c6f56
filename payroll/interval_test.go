package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

func TestParseClock(t *testing.T) {
	c, err := payroll.ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, c.Minutes())
	assert.Equal(t, "09:30", c.String())

	for _, bad := range []string{"", "24:00", "9h30", "12:60", "ab:cd"} {
		_, err := payroll.ParseClock(bad)
		assert.ErrorIs(t, err, payroll.ErrInvalidRange, "input %q", bad)
	}
}

func TestNewClockTime_RejectsOutOfDomain(t *testing.T) {
	_, err := payroll.NewClockTime(24, 0)
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)

	c, err := payroll.NewClockTime(23, 59)
	require.NoError(t, err)
	assert.Equal(t, payroll.LastMinute, c)
}

func TestParseWeekday(t *testing.T) {
	d, err := payroll.ParseWeekday("SA")
	require.NoError(t, err)
	assert.Equal(t, payroll.Saturday, d)
	assert.Equal(t, "SA", d.String())

	_, err = payroll.ParseWeekday("XX")
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
}

// =============================================================================
// TIME INTERVAL NORMALIZATION
// =============================================================================

func TestTimeInterval_StartAfterMidnightIsMidnight(t *testing.T) {
	ti, err := payroll.NewTimeInterval(clock("00:01"), clock("09:00"))
	require.NoError(t, err)
	assert.Equal(t, payroll.Midnight, ti.Start)
	assert.Equal(t, clock("09:00"), ti.End)
}

func TestTimeInterval_EndAtMidnightIsLastMinute(t *testing.T) {
	// GIVEN: a range declared to end at midnight
	// WHEN: constructing it
	// THEN: it ends at 23:59 of the same day instead of being rejected
	ti, err := payroll.NewTimeInterval(clock("18:01"), clock("00:00"))
	require.NoError(t, err)
	assert.Equal(t, clock("18:01"), ti.Start)
	assert.Equal(t, payroll.LastMinute, ti.End)
}

func TestTimeInterval_WholeDay(t *testing.T) {
	ti, err := payroll.NewTimeInterval(clock("00:00"), clock("00:00"))
	require.NoError(t, err)
	assert.Equal(t, payroll.Midnight, ti.Start)
	assert.Equal(t, payroll.LastMinute, ti.End)
}

func TestTimeInterval_StartAfterEnd(t *testing.T) {
	_, err := payroll.NewTimeInterval(clock("12:00"), clock("10:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)

	var rangeErr *payroll.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "time range", rangeErr.Field)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	a, _ := payroll.NewTimeInterval(clock("08:00"), clock("12:00"))
	b, _ := payroll.NewTimeInterval(clock("12:00"), clock("14:00"))
	c, _ := payroll.NewTimeInterval(clock("11:00"), clock("13:00"))

	assert.False(t, a.Overlaps(b), "touching endpoints do not overlap")
	assert.False(t, b.Overlaps(a))
	assert.True(t, a.Overlaps(c))
	assert.True(t, c.Overlaps(b))
	assert.Equal(t, 240, a.Duration())
}

// =============================================================================
// WEEKDAY RANGE
// =============================================================================

func TestWeekdayRange_Contains(t *testing.T) {
	r := days(t, payroll.Monday, payroll.Friday)

	assert.True(t, r.Contains(payroll.Monday))
	assert.True(t, r.Contains(payroll.Wednesday))
	assert.True(t, r.Contains(payroll.Friday))
	assert.False(t, r.Contains(payroll.Saturday))
	assert.Equal(t, "MO-FR", r.String())
}

func TestWeekdayRange_SingleDay(t *testing.T) {
	r := days(t, payroll.Sunday, payroll.Sunday)
	assert.True(t, r.Contains(payroll.Sunday))
	assert.False(t, r.Contains(payroll.Saturday))
}

func TestWeekdayRange_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		start, end payroll.Weekday
	}{
		{"start after end", payroll.Friday, payroll.Monday},
		{"negative start", -1, payroll.Monday},
		{"end past sunday", payroll.Monday, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := payroll.NewWeekdayRange(tt.start, tt.end)
			assert.ErrorIs(t, err, payroll.ErrInvalidRange)
		})
	}
}
