package acme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/warp/payroll-engine/payroll"
)

// DefaultMinLines is the number of employees a time clock export must hold.
const DefaultMinLines = 5

var (
	ErrInvalidFormat    = errors.New("invalid schedule format")
	ErrInvalidDay       = errors.New("invalid day")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInsufficientData = errors.New("insufficient data")
)

// IsParseError returns true if err comes from malformed export text.
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidDay) ||
		errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrInsufficientData)
}

// ParseScheduleLine parses one export line:
//
//	RENE=MO10:00-12:00,TU10:00-12:00,TH01:00-03:00
func ParseScheduleLine(line string) (payroll.EmployeeSchedule, error) {
	line = strings.TrimSpace(line)
	name, blocks, ok := strings.Cut(line, "=")
	if !ok || strings.Contains(blocks, "=") {
		return payroll.EmployeeSchedule{}, fmt.Errorf("%w: %s", ErrInvalidFormat, line)
	}
	name = strings.TrimSpace(name)

	var worked []payroll.WorkedInterval
	for _, block := range strings.Split(blocks, ",") {
		wi, err := parseBlock(strings.TrimSpace(block))
		if err != nil {
			return payroll.EmployeeSchedule{}, fmt.Errorf("error when trying to parse %s's schedule: %w", name, err)
		}
		worked = append(worked, wi)
	}

	schedule, err := payroll.NewEmployeeSchedule(name, worked)
	if err != nil {
		return payroll.EmployeeSchedule{}, fmt.Errorf("%s's schedule: %w", name, err)
	}
	return schedule, nil
}

// parseBlock parses "MO10:00-12:00".
func parseBlock(block string) (payroll.WorkedInterval, error) {
	if len(block) < 2 {
		return payroll.WorkedInterval{}, fmt.Errorf("%w: %q", ErrInvalidFormat, block)
	}

	day, err := payroll.ParseWeekday(block[:2])
	if err != nil {
		return payroll.WorkedInterval{}, fmt.Errorf("%w: %s", ErrInvalidDay, block[:2])
	}

	startText, endText, ok := strings.Cut(strings.TrimSpace(block[2:]), "-")
	if !ok {
		return payroll.WorkedInterval{}, fmt.Errorf("%w: invalid time range %q", ErrInvalidFormat, block[2:])
	}

	start, err := payroll.ParseClock(startText)
	if err != nil {
		return payroll.WorkedInterval{}, fmt.Errorf("%w: %s", ErrInvalidTime, startText)
	}
	end, err := payroll.ParseClock(endText)
	if err != nil {
		return payroll.WorkedInterval{}, fmt.Errorf("%w: %s", ErrInvalidTime, endText)
	}

	return payroll.NewWorkedInterval(day, start, end)
}

// ParseSchedules parses every non-blank line of r. Fewer than minLines
// schedules is an error.
func ParseSchedules(r io.Reader, minLines int) ([]payroll.EmployeeSchedule, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read schedules: %w", err)
	}

	if len(lines) < minLines {
		return nil, fmt.Errorf("%w: supply at least %d sets of data - supplied %d", ErrInsufficientData, minLines, len(lines))
	}

	return ParseLines(lines)
}

// ParseLines parses already-split export lines.
func ParseLines(lines []string) ([]payroll.EmployeeSchedule, error) {
	schedules := make([]payroll.EmployeeSchedule, 0, len(lines))
	for _, line := range lines {
		s, err := ParseScheduleLine(line)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}
