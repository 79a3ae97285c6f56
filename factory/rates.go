/*
Package factory provides JSON/YAML to Go rate plan conversion.

PURPOSE:
  Converts rate table definitions into validated payroll.RatePlan values.
  Wage rates change more often than code: payroll admins edit a JSON or
  YAML file, the factory builds and validates the plans.

JSON SCHEMA:
  {
    "currency": "USD",
    "plans": [
      {
        "name": "weekdays",
        "from": "MO",
        "to": "FR",
        "bands": [
          {"start": "00:01", "end": "09:00", "rate": 25},
          {"start": "09:01", "end": "18:00", "rate": 15},
          {"start": "18:01", "end": "00:00", "rate": 20}
        ]
      }
    ]
  }

  The YAML form uses the same keys.

KEY FEATURES:
  - Every band and plan goes through the payroll constructors
  - The table as a whole must cover MO..SU (checked via NewPayrollLedger)
  - Errors name the plan and band they came from

USAGE:
  f := factory.NewRateFactory()
  table, err := f.ParseRates(jsonString)
  ledger, err := table.NewLedger()

SEE ALSO:
  - payroll/plan.go: RatePlan validation
  - acme/rates.go:   the ACME preset table
*/
package factory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/payroll-engine/payroll"
)

const DefaultCurrency = "USD"

// =============================================================================
// SCHEMA TYPES
// =============================================================================

// RatesJSON is the serialized form of a rate table.
type RatesJSON struct {
	Currency string         `json:"currency,omitempty" yaml:"currency,omitempty"`
	Plans    []RatePlanJSON `json:"plans" yaml:"plans"`
}

// RatePlanJSON is one weekday range with its bands.
type RatePlanJSON struct {
	Name  string         `json:"name,omitempty" yaml:"name,omitempty"`
	From  string         `json:"from" yaml:"from"` // MO..SU
	To    string         `json:"to" yaml:"to"`
	Bands []WageBandJSON `json:"bands" yaml:"bands"`
}

// WageBandJSON is one hourly rate over a time-of-day range.
type WageBandJSON struct {
	Start string          `json:"start" yaml:"start"` // HH:MM
	End   string          `json:"end" yaml:"end"`
	Rate  decimal.Decimal `json:"rate" yaml:"rate"`
}

// RateTable is a validated set of plans covering the whole week.
type RateTable struct {
	Currency string
	Plans    []payroll.RatePlan
}

// NewLedger returns an empty ledger over the table's plans.
func (rt RateTable) NewLedger() (*payroll.PayrollLedger, error) {
	return payroll.NewPayrollLedger(rt.Plans)
}

// =============================================================================
// RATE FACTORY
// =============================================================================

// RateFactory converts serialized rate tables to payroll plans.
type RateFactory struct{}

// NewRateFactory creates a new rate factory.
func NewRateFactory() *RateFactory {
	return &RateFactory{}
}

// ParseRates parses a JSON rate table.
func (f *RateFactory) ParseRates(jsonStr string) (RateTable, error) {
	var rj RatesJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return RateTable{}, fmt.Errorf("failed to parse rates JSON: %w", err)
	}
	return f.FromJSON(rj)
}

// ParseRatesYAML parses a YAML rate table.
func (f *RateFactory) ParseRatesYAML(data []byte) (RateTable, error) {
	var rj RatesJSON
	if err := yaml.Unmarshal(data, &rj); err != nil {
		return RateTable{}, fmt.Errorf("failed to parse rates YAML: %w", err)
	}
	return f.FromJSON(rj)
}

// LoadRatesFile reads a rate table, choosing the format by extension
// (.json, .yaml, .yml).
func (f *RateFactory) LoadRatesFile(path string) (RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rates file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return f.ParseRates(string(data))
	case ".yaml", ".yml":
		return f.ParseRatesYAML(data)
	default:
		return RateTable{}, fmt.Errorf("unsupported rates file extension %q", filepath.Ext(path))
	}
}

// FromJSON builds and validates the plans described by rj.
func (f *RateFactory) FromJSON(rj RatesJSON) (RateTable, error) {
	table := RateTable{Currency: rj.Currency}
	if table.Currency == "" {
		table.Currency = DefaultCurrency
	}

	for i, pj := range rj.Plans {
		plan, err := parsePlan(pj)
		if err != nil {
			return RateTable{}, fmt.Errorf("plan %d (%s): %w", i, planLabel(pj), err)
		}
		table.Plans = append(table.Plans, plan)
	}

	// Week coverage is a property of the table, not of any single plan.
	ledger, err := table.NewLedger()
	if err != nil {
		return RateTable{}, err
	}
	table.Plans = ledger.Plans()
	return table, nil
}

// ToJSON converts a rate table back to its serialized form.
func (f *RateFactory) ToJSON(table RateTable) RatesJSON {
	rj := RatesJSON{Currency: table.Currency}
	for _, p := range table.Plans {
		pj := RatePlanJSON{
			From: p.Days().StartDay.String(),
			To:   p.Days().EndDay.String(),
		}
		for _, b := range p.Bands() {
			pj.Bands = append(pj.Bands, WageBandJSON{
				Start: b.Start.String(),
				End:   b.End.String(),
				Rate:  b.Rate,
			})
		}
		rj.Plans = append(rj.Plans, pj)
	}
	return rj
}

// =============================================================================
// PARSING HELPERS
// =============================================================================

func parsePlan(pj RatePlanJSON) (payroll.RatePlan, error) {
	from, err := payroll.ParseWeekday(pj.From)
	if err != nil {
		return payroll.RatePlan{}, err
	}
	to, err := payroll.ParseWeekday(pj.To)
	if err != nil {
		return payroll.RatePlan{}, err
	}
	days, err := payroll.NewWeekdayRange(from, to)
	if err != nil {
		return payroll.RatePlan{}, err
	}

	bands := make([]payroll.WageBand, 0, len(pj.Bands))
	for j, bj := range pj.Bands {
		band, err := parseBand(bj)
		if err != nil {
			return payroll.RatePlan{}, fmt.Errorf("band %d: %w", j, err)
		}
		bands = append(bands, band)
	}

	return payroll.NewRatePlan(days, bands)
}

func parseBand(bj WageBandJSON) (payroll.WageBand, error) {
	start, err := payroll.ParseClock(bj.Start)
	if err != nil {
		return payroll.WageBand{}, err
	}
	end, err := payroll.ParseClock(bj.End)
	if err != nil {
		return payroll.WageBand{}, err
	}
	return payroll.NewWageBand(start, end, bj.Rate)
}

func planLabel(pj RatePlanJSON) string {
	if pj.Name != "" {
		return pj.Name
	}
	return pj.From + "-" + pj.To
}
