/*
Package acme holds the ACME company's payroll conventions: its rate table,
the text format its time clock exports, and the report line it prints.

AVAILABLE RATES:
  Weekdays (MO-FR):  00:01-09:00 @25   09:01-18:00 @15   18:01-00:00 @20
  Weekend  (SA-SU):  00:01-09:00 @30   09:01-18:00 @20   18:01-00:00 @25

EXAMPLE:
  table := acme.StandardRates()
  ledger, _ := table.NewLedger()
  schedules, _ := acme.ParseSchedules(file, acme.DefaultMinLines)
  for _, s := range schedules {
      _ = ledger.AddEmployee(s)
  }
  fmt.Print(acme.FormatPayroll(ledger.ComputePayroll(), table.Currency))

SEE ALSO:
  - schedule.go:        schedule line parser
  - factory/rates.go:   JSON rate table format
*/
package acme

import (
	"fmt"

	"github.com/warp/payroll-engine/factory"
)

// StandardRatesJSON returns the ACME rate table as JSON.
func StandardRatesJSON() string {
	return RatesJSON(25, 15, 20, 30, 20, 25)
}

// RatesJSON builds a weekday/weekend table with the ACME band boundaries
// (night, day, evening) and the given hourly amounts.
func RatesJSON(weekdayNight, weekdayDay, weekdayEvening, weekendNight, weekendDay, weekendEvening int) string {
	return fmt.Sprintf(`{
  "currency": "USD",
  "plans": [
    {
      "name": "weekdays",
      "from": "MO",
      "to": "FR",
      "bands": [
        {"start": "00:01", "end": "09:00", "rate": %d},
        {"start": "09:01", "end": "18:00", "rate": %d},
        {"start": "18:01", "end": "00:00", "rate": %d}
      ]
    },
    {
      "name": "weekend",
      "from": "SA",
      "to": "SU",
      "bands": [
        {"start": "00:01", "end": "09:00", "rate": %d},
        {"start": "09:01", "end": "18:00", "rate": %d},
        {"start": "18:01", "end": "00:00", "rate": %d}
      ]
    }
  ]
}`, weekdayNight, weekdayDay, weekdayEvening, weekendNight, weekendDay, weekendEvening)
}

// StandardRates returns the validated ACME rate table. It panics only if the
// embedded table is itself invalid.
func StandardRates() factory.RateTable {
	table, err := factory.NewRateFactory().ParseRates(StandardRatesJSON())
	if err != nil {
		panic(fmt.Sprintf("acme: standard rates are invalid: %v", err))
	}
	return table
}
