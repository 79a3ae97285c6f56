package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func clock(s string) payroll.ClockTime {
	return payroll.MustParseClock(s)
}

func usd(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func band(t *testing.T, start, end string, rate int64) payroll.WageBand {
	t.Helper()
	b, err := payroll.NewWageBand(clock(start), clock(end), usd(rate))
	require.NoError(t, err)
	return b
}

func days(t *testing.T, start, end payroll.Weekday) payroll.WeekdayRange {
	t.Helper()
	r, err := payroll.NewWeekdayRange(start, end)
	require.NoError(t, err)
	return r
}

func plan(t *testing.T, r payroll.WeekdayRange, bands ...payroll.WageBand) payroll.RatePlan {
	t.Helper()
	p, err := payroll.NewRatePlan(r, bands)
	require.NoError(t, err)
	return p
}

func worked(t *testing.T, day payroll.Weekday, start, end string) payroll.WorkedInterval {
	t.Helper()
	w, err := payroll.NewWorkedInterval(day, clock(start), clock(end))
	require.NoError(t, err)
	return w
}

func schedule(t *testing.T, name string, intervals ...payroll.WorkedInterval) payroll.EmployeeSchedule {
	t.Helper()
	s, err := payroll.NewEmployeeSchedule(name, intervals)
	require.NoError(t, err)
	return s
}

// twoBandWeekdays is the MO-FR plan: 00:01-16:00 @20, 16:01-00:00 @15.
func twoBandWeekdays(t *testing.T) payroll.RatePlan {
	return plan(t, days(t, payroll.Monday, payroll.Friday),
		band(t, "00:01", "16:00", 20),
		band(t, "16:01", "00:00", 15),
	)
}

// assertAmount compares decimals by value, ignoring exponent.
func assertAmount(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, usd(want).Equal(got), "expected %d, got %s", want, got)
}
