package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

func TestNewWageBand_NegativeRate(t *testing.T) {
	_, err := payroll.NewWageBand(clock("09:00"), clock("17:00"), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
}

func TestNewWageBand_InvalidTimeRange(t *testing.T) {
	_, err := payroll.NewWageBand(clock("17:00"), clock("09:00"), usd(15))
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
}

func TestNewWageBand_ZeroRateAllowed(t *testing.T) {
	b, err := payroll.NewWageBand(clock("09:00"), clock("17:00"), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, b.Rate.IsZero())
}

func TestWageFor_ThreeHoursInsideBand(t *testing.T) {
	// GIVEN: band 09:00-17:00 at 15/hour
	// WHEN: working 09:00-12:00
	// THEN: 181 inclusive minutes -> 3 hours -> 45
	b := band(t, "09:00", "17:00", 15)

	pay, err := b.WageFor(clock("09:00"), clock("12:00"))
	require.NoError(t, err)
	assertAmount(t, 45, pay)
}

func TestWageFor_NoIntersection(t *testing.T) {
	b := band(t, "09:00", "17:00", 15)

	pay, err := b.WageFor(clock("20:00"), clock("20:01"))
	require.NoError(t, err)
	assertAmount(t, 0, pay)

	// Ending exactly where the band starts does not intersect.
	pay, err = b.WageFor(clock("07:00"), clock("09:00"))
	require.NoError(t, err)
	assertAmount(t, 0, pay)

	// Starting exactly where the band ends does not intersect.
	pay, err = b.WageFor(clock("17:00"), clock("19:00"))
	require.NoError(t, err)
	assertAmount(t, 0, pay)
}

func TestWageFor_PartialHourTruncated(t *testing.T) {
	b := band(t, "09:00", "17:00", 15)

	// 09:00-09:58 is 59 inclusive minutes: nothing earned.
	pay, err := b.WageFor(clock("09:00"), clock("09:58"))
	require.NoError(t, err)
	assertAmount(t, 0, pay)

	// 09:00-09:59 is 60 inclusive minutes: one hour.
	pay, err = b.WageFor(clock("09:00"), clock("09:59"))
	require.NoError(t, err)
	assertAmount(t, 15, pay)
}

func TestWageFor_ClipsToBand(t *testing.T) {
	b := band(t, "09:01", "18:00", 15)

	// Worked 08:00-12:00 only counts [09:01, 12:00] = 180 minutes.
	pay, err := b.WageFor(clock("08:00"), clock("12:00"))
	require.NoError(t, err)
	assertAmount(t, 45, pay)
}

func TestWageFor_WorkedEndAtMidnight(t *testing.T) {
	b := band(t, "18:01", "00:00", 20)

	// Worked end 00:00 is read as 23:59: [20:00, 23:59] = 240 minutes.
	pay, err := b.WageFor(clock("20:00"), clock("00:00"))
	require.NoError(t, err)
	assertAmount(t, 80, pay)
}

func TestWageFor_StartAfterEnd(t *testing.T) {
	b := band(t, "09:00", "17:00", 15)

	_, err := b.WageFor(clock("12:00"), clock("10:00"))
	assert.ErrorIs(t, err, payroll.ErrInvalidRange)
}

func TestWageFor_MonotonicInsideBand(t *testing.T) {
	b := band(t, "09:00", "17:00", 15)

	prev := decimal.Zero
	for end := clock("09:00"); end <= clock("17:00"); end++ {
		pay, err := b.WageFor(clock("09:00"), end)
		require.NoError(t, err)
		assert.Falsef(t, pay.LessThan(prev), "pay decreased at %s", end)
		prev = pay
	}
	assertAmount(t, 120, prev)
}
