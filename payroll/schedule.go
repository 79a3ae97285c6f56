package payroll

import (
	"sort"
	"strings"
)

// =============================================================================
// WORKED INTERVAL - One contiguous block of work on one weekday
// =============================================================================

type WorkedInterval struct {
	Weekday Weekday
	TimeInterval
}

func NewWorkedInterval(day Weekday, start, end ClockTime) (WorkedInterval, error) {
	if !day.Valid() {
		return WorkedInterval{}, &RangeError{Field: "weekday", Value: day.String()}
	}
	ti, err := NewTimeInterval(start, end)
	if err != nil {
		return WorkedInterval{}, err
	}
	return WorkedInterval{Weekday: day, TimeInterval: ti}, nil
}

func (w WorkedInterval) String() string {
	return w.Weekday.String() + w.Start.String() + "-" + w.End.String()
}

// =============================================================================
// EMPLOYEE SCHEDULE - A named set of non-overlapping worked intervals
// =============================================================================

// EmployeeSchedule is read-only after construction.
type EmployeeSchedule struct {
	name   string
	worked []WorkedInterval
}

// NewEmployeeSchedule sorts a copy of worked by (weekday, start) and rejects
// two intervals on the same day that share a moment. Touching intervals
// (A.End == B.Start) are allowed.
func NewEmployeeSchedule(name string, worked []WorkedInterval) (EmployeeSchedule, error) {
	if strings.TrimSpace(name) == "" {
		return EmployeeSchedule{}, ErrInvalidName
	}

	sorted := make([]WorkedInterval, len(worked))
	copy(sorted, worked)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weekday != sorted[j].Weekday {
			return sorted[i].Weekday < sorted[j].Weekday
		}
		return sorted[i].Start < sorted[j].Start
	})

	// furthest is the interval of the current day with the latest end so far.
	furthest := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Weekday != sorted[furthest].Weekday {
			furthest = i
			continue
		}
		if sorted[furthest].Overlaps(sorted[i].TimeInterval) {
			return EmployeeSchedule{}, &OverlapError{
				Kind:   "worked intervals",
				First:  sorted[furthest].String(),
				Second: sorted[i].String(),
			}
		}
		if sorted[i].End > sorted[furthest].End {
			furthest = i
		}
	}

	return EmployeeSchedule{name: name, worked: sorted}, nil
}

func (s EmployeeSchedule) Name() string { return s.name }

// Worked returns the intervals sorted by (weekday, start).
func (s EmployeeSchedule) Worked() []WorkedInterval {
	out := make([]WorkedInterval, len(s.worked))
	copy(out, s.worked)
	return out
}
