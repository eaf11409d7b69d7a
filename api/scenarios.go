/*
scenarios.go - Demo scenario loaders

PURPOSE:

	Pre-built scenarios that run the full pipeline on realistic deal data
	for testing and demos. Each scenario assembles financing events with
	the builders and applies them through the engine.

AVAILABLE SCENARIOS:

	acquisition:          Levered hotel purchase, costs capitalized
	acquisition-expensed: Same deal with issuance costs expensed
	refinance:            Purchase followed by a year-two refinance
	multi-tranche:        Equity funded in scheduled + conditional tranches

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "refinance", "persist": true}

ADDING NEW SCENARIOS:
 1. Add to the 'scenarios' slice with ID, name, description
 2. Create a builder function returning the event list
 3. Add a case to scenarioEvents

SEE ALSO:
  - handlers.go: ListScenarios, LoadScenario handlers
  - financing: The event builders scenarios use
*/
package api

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/financing"
	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "acquisition",
		Name:        "Hotel Acquisition",
		Description: "Levered purchase with capitalized financing costs",
	},
	{
		ID:          "acquisition-expensed",
		Name:        "Hotel Acquisition (Costs Expensed)",
		Description: "Same purchase with issuance costs hitting the income statement",
	},
	{
		ID:          "refinance",
		Name:        "Acquisition + Refinance",
		Description: "Purchase followed by a refinance with prepayment penalty",
	},
	{
		ID:          "multi-tranche",
		Name:        "Multi-Tranche Funding",
		Description: "Equity arriving via on-acquisition, scheduled, and conditional tranches",
	},
}

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

func acquisitionEvents(policy financing.AccountingPolicy, rounding ledger.RoundingPolicy) []ledger.StatementEvent {
	return []ledger.StatementEvent{
		financing.BuildAcquisition(financing.AcquisitionInput{
			EntityID:      "lb-hotel-001",
			Date:          date(2025, time.January, 15),
			PurchasePrice: money(2_300_000),
			LoanAmount:    money(1_725_000),
			ClosingCosts:  money(55_000),
		}, policy, rounding),
	}
}

func refinanceEvents(rounding ledger.RoundingPolicy) []ledger.StatementEvent {
	events := acquisitionEvents(financing.DefaultPolicy, rounding)
	return append(events, financing.BuildRefinance(financing.RefinanceInput{
		EntityID:          "lb-hotel-001",
		Date:              date(2026, time.February, 1),
		OldLoanBalance:    money(1_690_000),
		PrepaymentPenalty: money(33_800), // 2% of balance
		NewLoanAmount:     money(1_900_000),
		ClosingCosts:      money(28_500),
	}, financing.DefaultPolicy, rounding))
}

func multiTrancheEvents(rounding ledger.RoundingPolicy) []ledger.StatementEvent {
	acqDate := date(2025, time.January, 15)

	// Purchase is all-equity at close; later tranches top the cash account up.
	events := []ledger.StatementEvent{
		financing.BuildAcquisition(financing.AcquisitionInput{
			EntityID:      "lb-hotel-002",
			Date:          acqDate,
			PurchasePrice: money(1_200_000),
			ClosingCosts:  money(24_000),
		}, financing.DefaultPolicy, rounding),
	}

	tranches := []financing.FundingTranche{
		{
			EntityID: "lb-hotel-002",
			Amount:   money(400_000),
			Trigger:  financing.FundingTrigger{Kind: financing.TriggerOnAcquisition},
		},
		{
			EntityID: "lb-hotel-002",
			Amount:   money(250_000),
			Trigger:  financing.FundingTrigger{Kind: financing.TriggerScheduled, Date: date(2025, time.April, 1)},
		},
		{
			EntityID: "lb-hotel-002",
			Amount:   money(150_000),
			Trigger: financing.FundingTrigger{
				Kind:      financing.TriggerConditional,
				Date:      date(2025, time.July, 1),
				Condition: "renovation permit issued",
				Met:       true,
			},
		},
		{
			EntityID: "lb-hotel-002",
			Amount:   money(100_000),
			Trigger: financing.FundingTrigger{
				Kind:      financing.TriggerConditional,
				Date:      date(2025, time.October, 1),
				Condition: "occupancy above 70%",
				Met:       false, // never funds
			},
		},
	}
	for _, t := range tranches {
		if ev, ok := financing.BuildFunding(t, acqDate, rounding); ok {
			events = append(events, ev)
		}
	}
	return events
}

func scenarioEvents(id string, rounding ledger.RoundingPolicy) ([]ledger.StatementEvent, bool) {
	switch id {
	case "acquisition":
		return acquisitionEvents(financing.DefaultPolicy, rounding), true
	case "acquisition-expensed":
		policy := financing.AccountingPolicy{DebtIssuanceCosts: financing.CostsExpensed}
		return acquisitionEvents(policy, rounding), true
	case "refinance":
		return refinanceEvents(rounding), true
	case "multi-tranche":
		return multiTrancheEvents(rounding), true
	}
	return nil, false
}

// =============================================================================
// HANDLERS
// =============================================================================

// ListScenarios handles GET /api/scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"scenarios": scenarios})
}

// LoadScenario handles POST /api/scenarios/load: builds the scenario's
// events, runs the full pipeline, and optionally persists the run.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rounding := ledger.DefaultRounding
	events, ok := scenarioEvents(req.ScenarioID, rounding)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown scenario: "+req.ScenarioID)
		return
	}

	out, err := ledger.ApplyEvents(events, h.Registry, rounding)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := toApplyResponse(out)
	if req.Persist {
		runID, err := h.Store.SaveRun(r.Context(), "scenario:"+req.ScenarioID, out)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.RunID = runID
	}

	respondJSON(w, http.StatusOK, resp)
}
