package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// WAGE BAND - Hourly rate over a time-of-day interval
// =============================================================================

// WageBand pays Rate per whole hour worked inside its interval.
type WageBand struct {
	TimeInterval
	Rate decimal.Decimal
}

// NewWageBand validates the interval and requires a non-negative rate.
func NewWageBand(start, end ClockTime, rate decimal.Decimal) (WageBand, error) {
	ti, err := NewTimeInterval(start, end)
	if err != nil {
		return WageBand{}, err
	}
	if rate.IsNegative() {
		return WageBand{}, &RangeError{Field: "rate", Value: rate.String()}
	}
	return WageBand{TimeInterval: ti, Rate: rate}, nil
}

// WageFor returns the pay earned by working [workedStart, workedEnd] inside
// this band. A worked end of 00:00 counts as 23:59.
//
// Minutes are counted inclusively (both boundary minutes count, hence +1);
// the result is truncated to whole hours before applying the rate:
//
//	band 09:00-17:00 @15, worked 09:00-12:00 -> 181 min -> 3h -> 45
func (b WageBand) WageFor(workedStart, workedEnd ClockTime) (decimal.Decimal, error) {
	workedEnd = normalizeEnd(workedEnd)
	if workedStart > workedEnd {
		return decimal.Zero, &RangeError{Field: "worked range", Value: workedStart.String() + "-" + workedEnd.String()}
	}
	return b.wage(workedStart, workedEnd), nil
}

// wage assumes workedStart <= workedEnd with the end already normalized.
func (b WageBand) wage(workedStart, workedEnd ClockTime) decimal.Decimal {
	if workedEnd <= b.Start || workedStart >= b.End {
		return decimal.Zero
	}

	from := max(b.Start, workedStart)
	to := min(b.End, workedEnd)

	minutes := to.Minutes() - from.Minutes() + 1
	hours := minutes / minutesPerHour

	return decimal.NewFromInt(int64(hours)).Mul(b.Rate)
}

func (b WageBand) String() string {
	return b.TimeInterval.String() + " @" + b.Rate.String()
}
