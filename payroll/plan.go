package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE PLAN - Wage bands for a weekday range
// =============================================================================

// RatePlan applies one set of WageBands to every day in Days. The bands are
// contiguous and exhaustive: the first starts at 00:00, each next one starts
// one minute after the previous end, and the last ends at 23:59.
type RatePlan struct {
	days  WeekdayRange
	bands []WageBand
}

// NewRatePlan validates that bands tile the whole day. The caller's slice is
// left in its original order.
func NewRatePlan(days WeekdayRange, bands []WageBand) (RatePlan, error) {
	sorted := make([]WageBand, len(bands))
	copy(sorted, bands)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start == sorted[j].Start {
			return sorted[i].End < sorted[j].End
		}
		return sorted[i].Start < sorted[j].Start
	})

	if err := checkDayCoverage(sorted); err != nil {
		return RatePlan{}, err
	}
	return RatePlan{days: days, bands: sorted}, nil
}

func checkDayCoverage(bands []WageBand) error {
	next := Midnight
	for i, b := range bands {
		if b.Start > next {
			return &CoverageError{Domain: "hours", From: next.String(), To: (b.Start - 1).String()}
		}
		if b.Start < next {
			return &OverlapError{Kind: "wage bands", First: bands[i-1].String(), Second: b.String()}
		}
		next = b.End + 1
	}
	if next <= LastMinute {
		return &CoverageError{Domain: "hours", From: next.String(), To: LastMinute.String()}
	}
	return nil
}

func (p RatePlan) Days() WeekdayRange { return p.days }

// Bands returns the bands sorted by start time.
func (p RatePlan) Bands() []WageBand {
	out := make([]WageBand, len(p.bands))
	copy(out, p.bands)
	return out
}

// SalaryFor returns the pay for one worked interval, or zero when the
// interval's weekday falls outside this plan.
func (p RatePlan) SalaryFor(worked WorkedInterval) decimal.Decimal {
	if !p.days.Contains(worked.Weekday) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, b := range p.bands {
		total = total.Add(b.wage(worked.Start, worked.End))
	}
	return total
}

func (p RatePlan) String() string {
	return "plan " + p.days.String()
}
