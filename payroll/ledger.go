/*
ledger.go - Weekly rate plans plus the employee registry

PURPOSE:
  The PayrollLedger is where rates meet schedules. It owns a full week of
  RatePlans and the EmployeeSchedules registered against them, and computes
  what every employee is owed.

CRITICAL INVARIANTS:
  1. COVERAGE: plans sorted by start day cover MO..SU exactly once
  2. UNIQUE NAMES: an employee is registered at most once; the first
     registration is never replaced
  3. ORDERED OUTPUT: payroll results follow registration order

LIFECYCLE:
  Single writer first (NewPayrollLedger, AddEmployee...), then reads
  (ComputePayroll, ComputePayslips). Reads may run concurrently with each
  other, never with AddEmployee.

EXAMPLE FLOW:
  ledger, _ := payroll.NewPayrollLedger([]payroll.RatePlan{weekdays, weekend})
  _ = ledger.AddEmployee(monica)
  _ = ledger.AddEmployee(diane)
  for _, e := range ledger.ComputePayroll() {
      fmt.Println(e.Employee, e.Amount)
  }

SEE ALSO:
  - plan.go:     per-plan salary computation
  - schedule.go: EmployeeSchedule validation
*/
package payroll

import (
	"sort"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RESULTS
// =============================================================================

// PayrollEntry is one employee's total for the week.
type PayrollEntry struct {
	Employee string
	Amount   decimal.Decimal
}

// PayLine is the pay earned by a single worked interval.
type PayLine struct {
	Worked WorkedInterval
	Plan   WeekdayRange
	Amount decimal.Decimal
}

// Payslip breaks an employee's total down per worked interval.
type Payslip struct {
	Employee string
	Lines    []PayLine
	Total    decimal.Decimal
}

// =============================================================================
// PAYROLL LEDGER
// =============================================================================

type PayrollLedger struct {
	plans     []RatePlan
	employees map[string]EmployeeSchedule
	order     []string
}

// NewPayrollLedger validates that plans cover every weekday exactly once.
func NewPayrollLedger(plans []RatePlan) (*PayrollLedger, error) {
	sorted := make([]RatePlan, len(plans))
	copy(sorted, plans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].days.StartDay < sorted[j].days.StartDay
	})

	if err := checkWeekCoverage(sorted); err != nil {
		return nil, err
	}

	return &PayrollLedger{
		plans:     sorted,
		employees: make(map[string]EmployeeSchedule),
	}, nil
}

func checkWeekCoverage(plans []RatePlan) error {
	next := Monday
	for i, p := range plans {
		if p.days.StartDay > next {
			return &CoverageError{Domain: "weekdays", From: next.String(), To: (p.days.StartDay - 1).String()}
		}
		if p.days.StartDay < next {
			return &OverlapError{Kind: "rate plans", First: plans[i-1].String(), Second: p.String()}
		}
		next = p.days.EndDay + 1
	}
	if next <= Sunday {
		return &CoverageError{Domain: "weekdays", From: next.String(), To: Sunday.String()}
	}
	return nil
}

// AddEmployee registers a schedule. A name already present is rejected and
// the existing schedule is kept.
func (l *PayrollLedger) AddEmployee(schedule EmployeeSchedule) error {
	if _, exists := l.employees[schedule.name]; exists {
		return &DuplicateEmployeeError{Name: schedule.name}
	}
	l.employees[schedule.name] = schedule
	l.order = append(l.order, schedule.name)
	return nil
}

// Employee looks up a registered schedule by name.
func (l *PayrollLedger) Employee(name string) (EmployeeSchedule, bool) {
	s, ok := l.employees[name]
	return s, ok
}

// Employees returns the registered schedules in registration order.
func (l *PayrollLedger) Employees() []EmployeeSchedule {
	out := make([]EmployeeSchedule, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.employees[name])
	}
	return out
}

// Plans returns the rate plans sorted by start day.
func (l *PayrollLedger) Plans() []RatePlan {
	out := make([]RatePlan, len(l.plans))
	copy(out, l.plans)
	return out
}

// PlanFor returns the plan covering day.
func (l *PayrollLedger) PlanFor(day Weekday) (RatePlan, bool) {
	for _, p := range l.plans {
		if p.days.Contains(day) {
			return p, true
		}
	}
	return RatePlan{}, false
}

// ComputePayroll returns one entry per registered employee, in registration
// order.
func (l *PayrollLedger) ComputePayroll() []PayrollEntry {
	slips := l.ComputePayslips()
	entries := make([]PayrollEntry, len(slips))
	for i, s := range slips {
		entries[i] = PayrollEntry{Employee: s.Employee, Amount: s.Total}
	}
	return entries
}

// ComputePayslips is ComputePayroll with a per-interval breakdown.
func (l *PayrollLedger) ComputePayslips() []Payslip {
	slips := make([]Payslip, 0, len(l.order))
	for _, name := range l.order {
		slips = append(slips, l.payslip(l.employees[name]))
	}
	return slips
}

func (l *PayrollLedger) payslip(schedule EmployeeSchedule) Payslip {
	slip := Payslip{Employee: schedule.name, Total: decimal.Zero}
	for _, worked := range schedule.worked {
		for _, plan := range l.plans {
			if !plan.days.Contains(worked.Weekday) {
				continue
			}
			amount := plan.SalaryFor(worked)
			slip.Lines = append(slip.Lines, PayLine{Worked: worked, Plan: plan.days, Amount: amount})
			slip.Total = slip.Total.Add(amount)
		}
	}
	return slip
}
