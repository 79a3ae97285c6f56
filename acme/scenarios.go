/*
scenarios.go - Demo time clock exports

PURPOSE:
  Provides ready-made schedule exports that exercise the standard ACME rates.
  They back the /api/scenarios endpoints and double as regression fixtures:
  every scenario documents the totals it is expected to produce.

AVAILABLE SCENARIOS:
  two-employees:  RENE and ASTRID, the canonical example (215 / 85 USD)
  full-week:      five employees, the minimum accepted file size
  night-shift:    work that ends at midnight and starts right after it

ADDING NEW SCENARIOS:
  1. Add an entry to 'scenarios' with the export lines
  2. Fill Expected with the totals a payroll admin has checked by hand
*/
package acme

// Scenario is a named time clock export with its expected totals.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Lines       []string
	Expected    map[string]int64
}

var scenarios = []Scenario{
	{
		ID:          "two-employees",
		Name:        "Two Employees",
		Description: "Weekday mornings, a night block and weekend evenings",
		Lines: []string{
			"RENE=MO10:00-12:00,TU10:00-12:00,TH01:00-03:00,SA14:00-18:00,SU20:00-21:00",
			"ASTRID=MO10:00-12:00,TH12:00-14:00,SU20:00-21:00",
		},
		Expected: map[string]int64{"RENE": 215, "ASTRID": 85},
	},
	{
		ID:          "full-week",
		Name:        "Full Week",
		Description: "Five employees spread across weekdays and the weekend",
		Lines: []string{
			"RENE=MO10:00-12:00,TU10:00-12:00,TH01:00-03:00,SA14:00-18:00,SU20:00-21:00",
			"ASTRID=MO10:00-12:00,TH12:00-14:00,SU20:00-21:00",
			"ANDRES=MO08:00-12:00,WE09:00-17:00,FR18:00-22:00",
			"LUCIA=SA08:00-12:00,SU08:00-12:00",
			"PAOLO=TU00:01-09:00,TH09:00-18:00",
		},
		Expected: map[string]int64{
			"RENE":   215,
			"ASTRID": 85,
			"ANDRES": 270,
			"LUCIA":  180,
			"PAOLO":  360,
		},
	},
	{
		ID:          "night-shift",
		Name:        "Night Shift",
		Description: "Blocks touching midnight on both sides",
		Lines: []string{
			"NADIA=FR18:01-00:00,SA00:01-09:00",
		},
		Expected: map[string]int64{"NADIA": 370},
	},
}

// Scenarios returns every demo scenario.
func Scenarios() []Scenario {
	out := make([]Scenario, len(scenarios))
	copy(out, scenarios)
	return out
}

// ScenarioByID looks up a scenario.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}
