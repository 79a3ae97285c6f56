/*
Package payroll provides the wage-rate validation and salary computation engine.

PURPOSE:
  This package turns worked time ranges into money. A PayrollLedger holds a
  week of RatePlans (weekday range + hourly WageBands covering the full day)
  and a registry of EmployeeSchedules, and computes what each employee earns.

KEY CONCEPTS IN THIS FILE (types.go):
  - ClockTime: a minute-granular time of day (00:00..23:59)
  - Weekday:   0=Monday .. 6=Sunday, with two-letter codes (MO..SU)

DESIGN PRINCIPLES:
  1. Validate once: every type is checked at construction and never mutated
  2. Precision: rates and pay use decimal.Decimal
  3. Composition: WageBand and WorkedInterval both embed TimeInterval
  4. Caller slices are never reordered; constructors sort private copies

USAGE:
  band, _ := payroll.NewWageBand(payroll.MustParseClock("09:00"),
      payroll.MustParseClock("17:00"), decimal.NewFromInt(15))
  pay, _ := band.WageFor(payroll.MustParseClock("09:00"), payroll.MustParseClock("12:00"))
  // pay == 45

SEE ALSO:
  - interval.go: TimeInterval and WeekdayRange
  - band.go:     WageBand and the per-band wage arithmetic
  - plan.go:     RatePlan coverage validation
  - ledger.go:   PayrollLedger and payroll computation
*/
package payroll

import (
	"fmt"
	"time"
)

// =============================================================================
// CLOCK TIME - Time of day with minute granularity
// =============================================================================

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

const (
	Midnight    ClockTime = 0
	FirstMinute ClockTime = 1
	LastMinute  ClockTime = 23*60 + 59

	minutesPerHour = 60
	clockLayout    = "15:04"
)

// NewClockTime builds a ClockTime from an hour (0-23) and minute (0-59).
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &RangeError{Field: "time", Value: fmt.Sprintf("%02d:%02d", hour, minute)}
	}
	return ClockTime(hour*minutesPerHour + minute), nil
}

// ParseClock parses "HH:MM" (24-hour clock).
func ParseClock(s string) (ClockTime, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, &RangeError{Field: "time", Value: s}
	}
	return ClockTime(t.Hour()*minutesPerHour + t.Minute()), nil
}

// MustParseClock is ParseClock for literals; it panics on malformed input.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Hour() int    { return int(c) / minutesPerHour }
func (c ClockTime) Minute() int  { return int(c) % minutesPerHour }
func (c ClockTime) Minutes() int { return int(c) }
func (c ClockTime) Valid() bool  { return c >= Midnight && c <= LastMinute }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// =============================================================================
// WEEKDAY - Day of the working week, Monday first
// =============================================================================

type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayCodes = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// ParseWeekday resolves a two-letter code (MO, TU, WE, TH, FR, SA, SU).
func ParseWeekday(code string) (Weekday, error) {
	for i, c := range weekdayCodes {
		if c == code {
			return Weekday(i), nil
		}
	}
	return 0, &RangeError{Field: "weekday", Value: code}
}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayCodes[d]
}
