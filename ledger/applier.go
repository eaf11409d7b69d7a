/*
applier.go - Multi-period statement pipeline orchestration

PURPOSE:
  Sequences the full run: post all events, walk the distinct periods in
  ascending order building trial balance and statements for each (carrying
  cumulative net income into the balance sheet), then reconcile the whole
  set.

The stages stay independently testable: the applier only wires posting,
trial balance, statement extraction, and reconciliation together through
immutable value objects, it adds no accounting logic of its own.

A rejected event never aborts the run. It is reported via UnbalancedEvents
and HasPostingErrors while every valid event still flows through.
*/
package ledger

import "github.com/shopspring/decimal"

// PeriodStatements bundles the derived views for one month.
type PeriodStatements struct {
	Period       Period
	TrialBalance []TrialBalanceEntry
	Income       IncomeStatement
	Balance      BalanceSheet
	CashFlow     CashFlowStatement
}

// ApplierOutput is the complete result of a statement run.
type ApplierOutput struct {
	Entries          []PostedEntry
	UnbalancedEvents []string
	Periods          []PeriodStatements
	Reconciliation   ReconciliationResult
	HasPostingErrors bool
}

// ApplyEvents runs the pipeline over all periods spanned by the events.
// The only error condition is a delta referencing an account the registry
// does not define; arithmetic invariant violations are reported in the
// output instead.
func ApplyEvents(events []StatementEvent, reg *Registry, rounding RoundingPolicy) (*ApplierOutput, error) {
	posted := PostEvents(events, rounding)

	out := &ApplierOutput{
		Entries:          posted.Entries,
		UnbalancedEvents: posted.UnbalancedEvents,
		HasPostingErrors: posted.HasErrors(),
	}

	cumulativeNetIncome := decimal.Zero
	for _, period := range DistinctPeriods(posted.Entries) {
		tb, err := BuildTrialBalance(posted.Entries, reg, period)
		if err != nil {
			return nil, err
		}

		is := BuildIncomeStatement(tb, reg, period)
		cumulativeNetIncome = cumulativeNetIncome.Add(is.NetIncome)

		out.Periods = append(out.Periods, PeriodStatements{
			Period:       period,
			TrialBalance: tb,
			Income:       is,
			Balance:      BuildBalanceSheet(tb, reg, period, cumulativeNetIncome),
			CashFlow:     BuildCashFlow(posted.Entries, period),
		})
	}

	out.Reconciliation = Reconcile(out.Periods, posted.Entries)
	return out, nil
}
