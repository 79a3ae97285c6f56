/*
scenarios.go - Demo scenario endpoints

PURPOSE:
  Runs the ACME demo time clock exports against the rates this server was
  started with. Useful to check a new rate table against known data.

USAGE VIA API:
  GET  /api/scenarios
  POST /api/scenarios/two-employees/run

SEE ALSO:
  - acme/scenarios.go: scenario definitions and expected totals
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/acme"
)

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	all := acme.Scenarios()
	dtos := make([]ScenarioDTO, len(all))
	for i, s := range all {
		dtos[i] = ScenarioDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Employees:   len(s.Lines),
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RunScenario computes the payroll of a demo scenario with the current rates.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sc, ok := acme.ScenarioByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}

	slips, err := h.run(r, PayrollRequest{Lines: sc.Lines})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.payrollResponse(slips, true))
}
