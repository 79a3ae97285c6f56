/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the payroll model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Request types carry go-playground/validator tags; handlers call
  h.validate.Struct before touching the payroll engine. Semantic checks
  (time ranges, overlaps) stay in the payroll package.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/rates.go: RatesJSON type
*/
package api

import (
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// PAYROLL REQUEST
// =============================================================================

// WorkedBlockDTO is one worked interval, e.g. {"day":"MO","start":"10:00","end":"12:00"}.
type WorkedBlockDTO struct {
	Day   string `json:"day" validate:"required,oneof=MO TU WE TH FR SA SU"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// EmployeeScheduleDTO is one employee's week.
type EmployeeScheduleDTO struct {
	Name   string           `json:"name" validate:"required"`
	Worked []WorkedBlockDTO `json:"worked" validate:"dive"`
}

// PayrollRequest accepts structured schedules, raw time clock lines
// ("RENE=MO10:00-12:00,..."), or both. Structured schedules are registered
// first.
type PayrollRequest struct {
	Employees []EmployeeScheduleDTO `json:"employees,omitempty" validate:"required_without=Lines,dive"`
	Lines     []string              `json:"lines,omitempty" validate:"required_without=Employees"`
}

// =============================================================================
// PAYROLL RESPONSE
// =============================================================================

// PayrollEntryDTO is one employee's total.
type PayrollEntryDTO struct {
	Employee string  `json:"employee"`
	Amount   float64 `json:"amount"`
}

// PayLineDTO is the pay for one worked interval.
type PayLineDTO struct {
	Day    string  `json:"day"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Plan   string  `json:"plan"`
	Amount float64 `json:"amount"`
}

// PayslipDTO breaks a total down per worked interval.
type PayslipDTO struct {
	Employee string       `json:"employee"`
	Total    float64      `json:"total"`
	Lines    []PayLineDTO `json:"lines"`
}

// PayrollResponse is the result of a payroll run.
type PayrollResponse struct {
	RunID    string            `json:"run_id"`
	Currency string            `json:"currency"`
	Results  []PayrollEntryDTO `json:"results"`
	Total    float64           `json:"total"`
	Payslips []PayslipDTO      `json:"payslips,omitempty"`
}

// =============================================================================
// OTHER TYPES
// =============================================================================

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Employees   int    `json:"employees"`
}

// ValidateRatesResponse reports a successfully validated rate table.
type ValidateRatesResponse struct {
	Valid    bool   `json:"valid"`
	Currency string `json:"currency"`
	Plans    int    `json:"plans"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toPayslipDTO(slip payroll.Payslip) PayslipDTO {
	dto := PayslipDTO{
		Employee: slip.Employee,
		Total:    slip.Total.InexactFloat64(),
		Lines:    make([]PayLineDTO, 0, len(slip.Lines)),
	}
	for _, l := range slip.Lines {
		dto.Lines = append(dto.Lines, PayLineDTO{
			Day:    l.Worked.Weekday.String(),
			Start:  l.Worked.Start.String(),
			End:    l.Worked.End.String(),
			Plan:   l.Plan.String(),
			Amount: l.Amount.InexactFloat64(),
		})
	}
	return dto
}
