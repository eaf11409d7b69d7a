/*
funding.go - Capital funding tranches with discriminated triggers

PURPOSE:
  Equity capital arrives in tranches, each released by a trigger:
  scheduled (a fixed date), on_acquisition (the closing date), or
  conditional (a named condition that may or may not be met). Triggers are a
  tagged union matched exhaustively, not a type hierarchy.

GAAP INVARIANT:
  A funding tranche is always BS_EQUITY against a FINANCING cash inflow.
  It never touches the income statement.
*/
package financing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// TriggerKind discriminates funding triggers.
type TriggerKind string

const (
	TriggerScheduled     TriggerKind = "scheduled"
	TriggerOnAcquisition TriggerKind = "on_acquisition"
	TriggerConditional   TriggerKind = "conditional"
)

// FundingTrigger says when a tranche funds. Date applies to scheduled and
// conditional triggers; Condition and Met only to conditional ones.
type FundingTrigger struct {
	Kind      TriggerKind
	Date      time.Time
	Condition string
	Met       bool
}

// FundingTranche is one slice of committed equity capital.
type FundingTranche struct {
	EntityID string
	Amount   decimal.Decimal
	Trigger  FundingTrigger
}

// ResolveDate returns the funding date for the tranche, or ok=false when
// the tranche does not fund (an unmet conditional trigger).
func (t FundingTranche) ResolveDate(acquisitionDate time.Time) (time.Time, bool) {
	switch t.Trigger.Kind {
	case TriggerOnAcquisition:
		return acquisitionDate, true
	case TriggerConditional:
		if !t.Trigger.Met {
			return time.Time{}, false
		}
		return t.Trigger.Date, true
	default: // scheduled
		return t.Trigger.Date, true
	}
}

// BuildFunding emits the tranche's event, or ok=false when the trigger does
// not release it.
func BuildFunding(t FundingTranche, acquisitionDate time.Time, rounding ledger.RoundingPolicy) (ledger.StatementEvent, bool) {
	date, funds := t.ResolveDate(acquisitionDate)
	amount := rounding.Apply(t.Amount)
	if !funds || !amount.IsPositive() {
		return ledger.StatementEvent{}, false
	}

	memo := "capital funding tranche"
	if t.Trigger.Kind == TriggerConditional {
		memo = "conditional funding: " + t.Trigger.Condition
	}

	return ledger.StatementEvent{
		EventID:   newEventID(),
		EventType: EventFunding,
		Date:      date,
		EntityID:  t.EntityID,
		Deltas: []ledger.JournalDelta{
			{
				Account:        ledger.AccountCash,
				Debit:          amount,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           memo,
			},
			{
				Account:        AccountEquityContrib,
				Credit:         amount,
				Classification: ledger.ClassEquity,
				Memo:           memo,
			},
		},
	}, true
}
