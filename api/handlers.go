/*
handlers.go - HTTP API handlers for the statement engine

PURPOSE:
  Exposes the accounting core and the debt/returns library via REST.
  Handles HTTP request/response and JSON serialization, and delegates all
  arithmetic to the engine packages.

ENDPOINTS:
  Debt:
    POST /api/debt/schedule       Amortization schedule
    POST /api/debt/sizing         Loan sizing under LTV/DSCR
    POST /api/debt/payoff         Payoff quote

  Returns:
    POST /api/returns/metrics     MOIC/DPI/cash-on-cash/IRR

  Statements:
    POST /api/statements/apply    Full statement run over submitted events
    GET  /api/runs                Persisted run listing
    GET  /api/runs/{id}           One persisted run

  Scenarios:
    GET  /api/scenarios           List demo scenarios
    POST /api/scenarios/load      Run a demo scenario

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON or parameters
  - 404: Unknown run or scenario
  - 500: Store failures
  Rejected events and non-converged solves are NOT errors; they are facts
  in a 200 response body.

SEE ALSO:
  - dto.go: Request/response structures
  - scenarios.go: Demo scenario builders
  - server.go: Router setup and middleware
*/
package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ricardocidale/LB-Hospitality-sub008/debt"
	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
	"github.com/ricardocidale/LB-Hospitality-sub008/returns"
	"github.com/ricardocidale/LB-Hospitality-sub008/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *sqlite.Store
	Registry *ledger.Registry
}

// NewHandler creates a handler backed by the given store and chart.
func NewHandler(store *sqlite.Store, registry *ledger.Registry) *Handler {
	return &Handler{Store: store, Registry: registry}
}

// =============================================================================
// HELPERS
// =============================================================================

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

// =============================================================================
// DEBT HANDLERS
// =============================================================================

// BuildSchedule handles POST /api/debt/schedule.
func (h *Handler) BuildSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Terms.TermMonths <= 0 {
		respondError(w, http.StatusBadRequest, "term_months must be positive")
		return
	}

	schedule := debt.BuildSchedule(req.LoanAmount, req.Terms.toTerms(), req.Rounding.toPolicy())
	respondJSON(w, http.StatusOK, map[string]any{"schedule": toScheduleDTOs(schedule)})
}

// ComputeSizing handles POST /api/debt/sizing.
func (h *Handler) ComputeSizing(w http.ResponseWriter, r *http.Request) {
	var req SizingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := debt.ComputeSizing(
		req.Valuation.toValuation(), req.LTVMax, req.Terms.toTerms(),
		req.DSCRMin, req.NOIForDSCR, req.Rounding.toPolicy(),
	)
	respondJSON(w, http.StatusOK, toSizingDTO(result))
}

// ComputePayoff handles POST /api/debt/payoff.
func (h *Handler) ComputePayoff(w http.ResponseWriter, r *http.Request) {
	var req PayoffRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result := debt.ComputePayoff(
		req.Balance,
		debt.PrepaymentPenalty{Type: debt.PenaltyType(req.Penalty.Type), Value: req.Penalty.Value},
		req.AccruedInterest,
		req.Rounding.toPolicy(),
	)
	respondJSON(w, http.StatusOK, PayoffDTO{
		Balance:           result.Balance,
		PrepaymentPenalty: result.PrepaymentPenalty,
		AccruedInterest:   result.AccruedInterest,
		Total:             result.Total,
	})
}

// =============================================================================
// RETURNS HANDLER
// =============================================================================

// ComputeMetrics handles POST /api/returns/metrics.
func (h *Handler) ComputeMetrics(w http.ResponseWriter, r *http.Request) {
	var req MetricsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PeriodsPerYear <= 0 {
		req.PeriodsPerYear = 1
	}

	metrics := returns.ComputeMetrics(req.CashFlows, req.PeriodsPerYear, req.Rounding.toPolicy())
	respondJSON(w, http.StatusOK, toMetricsDTO(metrics))
}

// =============================================================================
// STATEMENT HANDLERS
// =============================================================================

// ApplyStatements handles POST /api/statements/apply.
func (h *Handler) ApplyStatements(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	events := make([]ledger.StatementEvent, 0, len(req.Events))
	for _, ed := range req.Events {
		ev, err := ed.toEvent()
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("event %s: bad date %q", ed.EventID, ed.Date))
			return
		}
		events = append(events, ev)
	}

	out, err := ledger.ApplyEvents(events, h.Registry, req.Rounding.toPolicy())
	if err != nil {
		var unknown *ledger.UnknownAccountError
		if errors.As(err, &unknown) {
			respondError(w, http.StatusBadRequest, unknown.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := toApplyResponse(out)
	if req.Persist {
		runID, err := h.Store.SaveRun(r.Context(), req.Label, out)
		if err != nil {
			respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to persist run: %v", err))
			return
		}
		resp.RunID = runID
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListRuns handles GET /api/runs.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.Store.ListRuns(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]RunSummaryDTO, 0, len(runs))
	for _, run := range runs {
		out = append(out, RunSummaryDTO{
			ID:               run.ID,
			Label:            run.Label,
			CreatedAt:        run.CreatedAt.Format("2006-01-02T15:04:05Z"),
			EntryCount:       run.EntryCount,
			HasPostingErrors: run.HasPostingErrors,
			AllPassed:        run.AllPassed,
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"runs": out})
}

// GetRun handles GET /api/runs/{id}.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "id")

	run, err := h.Store.LoadRun(r.Context(), runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, fmt.Sprintf("run %s not found", runID))
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	entries := make([]EntryDTO, 0, len(run.Entries))
	for _, e := range run.Entries {
		entries = append(entries, EntryDTO{
			EventID:        e.EventID,
			Period:         e.Period.String(),
			Account:        e.Account,
			Debit:          e.Debit,
			Credit:         e.Credit,
			Classification: string(e.Classification),
			CashFlowBucket: string(e.CashFlowBucket),
			Memo:           e.Memo,
		})
	}
	checks := make([]CheckDTO, 0, len(run.Checks))
	for _, c := range run.Checks {
		checks = append(checks, CheckDTO{
			Name:     c.Name,
			Period:   c.Period.String(),
			Passed:   c.Passed,
			Expected: c.Expected,
			Actual:   c.Actual,
			Variance: c.Variance,
			GAAPRef:  c.GAAPRef,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"id":                 run.ID,
		"label":              run.Label,
		"created_at":         run.CreatedAt.Format("2006-01-02T15:04:05Z"),
		"has_posting_errors": run.HasPostingErrors,
		"all_passed":         run.AllPassed,
		"unbalanced_events":  run.UnbalancedEvents,
		"posted_entries":     entries,
		"reconciliation":     checks,
	})
}
