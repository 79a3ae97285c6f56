package payroll

import "fmt"

// =============================================================================
// TIME INTERVAL - Validated [Start, End] time-of-day range
// =============================================================================

// TimeInterval is an inclusive time-of-day range with the midnight rules
// applied:
//   - a start of 00:01 is coerced to 00:00
//   - an end of 00:00 is coerced to 23:59 (same day, never the next one)
//
// Both WageBand and WorkedInterval embed it.
type TimeInterval struct {
	Start ClockTime
	End   ClockTime
}

// NewTimeInterval normalizes the bounds and rejects ranges whose normalized
// start is after the normalized end.
func NewTimeInterval(start, end ClockTime) (TimeInterval, error) {
	if !start.Valid() {
		return TimeInterval{}, &RangeError{Field: "start", Value: fmt.Sprint(int(start))}
	}
	if !end.Valid() {
		return TimeInterval{}, &RangeError{Field: "end", Value: fmt.Sprint(int(end))}
	}

	ti := TimeInterval{Start: normalizeStart(start), End: normalizeEnd(end)}
	if ti.Start > ti.End {
		return TimeInterval{}, &RangeError{Field: "time range", Value: start.String() + "-" + end.String()}
	}
	return ti, nil
}

func normalizeStart(c ClockTime) ClockTime {
	if c == FirstMinute {
		return Midnight
	}
	return c
}

func normalizeEnd(c ClockTime) ClockTime {
	if c == Midnight {
		return LastMinute
	}
	return c
}

// Overlaps reports whether both intervals claim a common moment.
// Touching endpoints (a.End == b.Start) do not overlap.
func (ti TimeInterval) Overlaps(other TimeInterval) bool {
	return ti.Start < other.End && other.Start < ti.End
}

// Duration returns End - Start in minutes.
func (ti TimeInterval) Duration() int {
	return ti.End.Minutes() - ti.Start.Minutes()
}

func (ti TimeInterval) String() string {
	return "[" + ti.Start.String() + ", " + ti.End.String() + "]"
}

// =============================================================================
// WEEKDAY RANGE - Inclusive [StartDay, EndDay]
// =============================================================================

type WeekdayRange struct {
	StartDay Weekday
	EndDay   Weekday
}

// NewWeekdayRange validates both days lie in Monday..Sunday and start <= end.
func NewWeekdayRange(start, end Weekday) (WeekdayRange, error) {
	if !start.Valid() {
		return WeekdayRange{}, &RangeError{Field: "start day", Value: fmt.Sprint(int(start))}
	}
	if !end.Valid() {
		return WeekdayRange{}, &RangeError{Field: "end day", Value: fmt.Sprint(int(end))}
	}
	if start > end {
		return WeekdayRange{}, &RangeError{Field: "day range", Value: start.String() + "-" + end.String()}
	}
	return WeekdayRange{StartDay: start, EndDay: end}, nil
}

// Contains returns true if day is within [StartDay, EndDay].
func (r WeekdayRange) Contains(day Weekday) bool {
	return day >= r.StartDay && day <= r.EndDay
}

func (r WeekdayRange) String() string {
	if r.StartDay == r.EndDay {
		return r.StartDay.String()
	}
	return r.StartDay.String() + "-" + r.EndDay.String()
}
