/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll engine via REST API. Handles HTTP request/response,
  JSON serialization, and delegates to the payroll package.

ENDPOINTS:
  Rates:
    GET    /api/rates                 Current rate table
    POST   /api/rates/validate        Validate a rate table without using it

  Payroll:
    POST   /api/payroll               Compute a payroll (?details=true for payslips)
    POST   /api/payroll/export        Same input, XLSX workbook output

  Scenarios:
    GET    /api/scenarios             List demo scenarios
    POST   /api/scenarios/{id}/run    Compute the payroll of a demo scenario

ARCHITECTURE:
  Handler holds the validated rate table. Each request builds its own
  PayrollLedger from those (immutable) plans, so concurrent requests never
  share a ledger.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: malformed body, parse errors, range/coverage/overlap violations
  - 404: unknown scenario
  - 409: employee listed twice in one payroll
  - 500: internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/acme"
	"github.com/warp/payroll-engine/export"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Rates   factory.RateTable
	Factory *factory.RateFactory
	Logger  zerolog.Logger

	validate *validator.Validate
}

// NewHandler creates a new handler serving the given rate table.
func NewHandler(rates factory.RateTable, logger zerolog.Logger) *Handler {
	return &Handler{
		Rates:    rates,
		Factory:  factory.NewRateFactory(),
		Logger:   logger,
		validate: validator.New(),
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RATE HANDLERS
// =============================================================================

// GetRates returns the rate table in use.
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Factory.ToJSON(h.Rates))
}

// ValidateRates checks a rate table for coverage and overlaps.
func (h *Handler) ValidateRates(w http.ResponseWriter, r *http.Request) {
	var req factory.RatesJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	table, err := h.Factory.FromJSON(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ValidateRatesResponse{
		Valid:    true,
		Currency: table.Currency,
		Plans:    len(table.Plans),
	})
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// ComputePayroll computes the payroll for the submitted schedules.
func (h *Handler) ComputePayroll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePayrollRequest(w, r)
	if !ok {
		return
	}

	slips, err := h.run(r, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.payrollResponse(slips, r.URL.Query().Get("details") == "true"))
}

// ExportPayroll computes the payroll and returns it as an XLSX workbook.
func (h *Handler) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePayrollRequest(w, r)
	if !ok {
		return
	}

	slips, err := h.run(r, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	wb, err := export.NewPayrollWorkbook(slips, h.Rates.Currency)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build workbook", err)
		return
	}
	defer wb.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll-%s.xlsx"`, uuid.NewString()))
	w.WriteHeader(http.StatusOK)
	if err := wb.Write(w); err != nil {
		h.Logger.Error().Err(err).Msg("failed to stream workbook")
	}
}

func (h *Handler) decodePayrollRequest(w http.ResponseWriter, r *http.Request) (PayrollRequest, bool) {
	var req PayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return req, false
	}
	if err := h.validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return req, false
	}
	return req, true
}

// run builds a fresh ledger for this request, registers every schedule in
// request order and computes the payslips.
func (h *Handler) run(r *http.Request, req PayrollRequest) ([]payroll.Payslip, error) {
	started := time.Now()

	schedules, err := schedulesFromRequest(req)
	if err != nil {
		h.reject(r, err)
		return nil, err
	}

	ledger, err := h.Rates.NewLedger()
	if err != nil {
		return nil, err
	}
	for _, s := range schedules {
		if err := ledger.AddEmployee(s); err != nil {
			h.reject(r, err)
			return nil, err
		}
	}

	slips := ledger.ComputePayslips()

	total := decimal.Zero
	for _, s := range slips {
		total = total.Add(s.Total)
	}
	metrics.ObserveRun(len(slips), total, time.Since(started))
	h.Logger.Debug().
		Str("request_id", middleware.GetReqID(r.Context())).
		Int("employees", len(slips)).
		Str("total", total.String()).
		Msg("payroll computed")

	return slips, nil
}

func (h *Handler) reject(r *http.Request, err error) {
	metrics.IncRejected()
	h.Logger.Warn().
		Err(err).
		Str("request_id", middleware.GetReqID(r.Context())).
		Msg("payroll rejected")
}

func schedulesFromRequest(req PayrollRequest) ([]payroll.EmployeeSchedule, error) {
	schedules := make([]payroll.EmployeeSchedule, 0, len(req.Employees)+len(req.Lines))

	for _, e := range req.Employees {
		worked := make([]payroll.WorkedInterval, 0, len(e.Worked))
		for _, b := range e.Worked {
			wi, err := workedFromDTO(b)
			if err != nil {
				return nil, fmt.Errorf("%s's schedule: %w", e.Name, err)
			}
			worked = append(worked, wi)
		}
		s, err := payroll.NewEmployeeSchedule(e.Name, worked)
		if err != nil {
			return nil, fmt.Errorf("%s's schedule: %w", e.Name, err)
		}
		schedules = append(schedules, s)
	}

	parsed, err := acme.ParseLines(req.Lines)
	if err != nil {
		return nil, err
	}
	return append(schedules, parsed...), nil
}

func workedFromDTO(b WorkedBlockDTO) (payroll.WorkedInterval, error) {
	day, err := payroll.ParseWeekday(b.Day)
	if err != nil {
		return payroll.WorkedInterval{}, err
	}
	start, err := payroll.ParseClock(b.Start)
	if err != nil {
		return payroll.WorkedInterval{}, err
	}
	end, err := payroll.ParseClock(b.End)
	if err != nil {
		return payroll.WorkedInterval{}, err
	}
	return payroll.NewWorkedInterval(day, start, end)
}

func (h *Handler) payrollResponse(slips []payroll.Payslip, details bool) PayrollResponse {
	resp := PayrollResponse{
		RunID:    uuid.NewString(),
		Currency: h.Rates.Currency,
		Results:  make([]PayrollEntryDTO, 0, len(slips)),
	}

	total := decimal.Zero
	for _, s := range slips {
		resp.Results = append(resp.Results, PayrollEntryDTO{
			Employee: s.Employee,
			Amount:   s.Total.InexactFloat64(),
		})
		total = total.Add(s.Total)
		if details {
			resp.Payslips = append(resp.Payslips, toPayslipDTO(s))
		}
	}
	resp.Total = total.InexactFloat64()
	return resp
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeDomainError maps payroll and parsing errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Error: err.Error(), Code: errorCode(err)}
	switch {
	case payroll.IsConflict(err):
		writeJSON(w, http.StatusConflict, resp)
	case payroll.IsClientError(err), acme.IsParseError(err):
		writeJSON(w, http.StatusBadRequest, resp)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, payroll.ErrDuplicateEmployee):
		return "duplicate_employee"
	case errors.Is(err, payroll.ErrOverlap):
		return "overlap"
	case errors.Is(err, payroll.ErrCoverage):
		return "coverage"
	case errors.Is(err, payroll.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, payroll.ErrInvalidName):
		return "invalid_name"
	case acme.IsParseError(err):
		return "invalid_format"
	default:
		return ""
	}
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Namespace()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "Validation failed",
		Code:    "validation",
		Details: fields,
	})
}
