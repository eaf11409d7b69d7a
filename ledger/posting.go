/*
posting.go - Event validation and posting

PURPOSE:
  The single invariant-enforcement point for double-entry correctness.
  Converts accepted StatementEvents into PostedEntry rows stamped with the
  event's month; rejects events whose deltas do not balance.

ALL-OR-NOTHING:
  An event is posted whole or not at all. If its deltas do not balance
  within tolerance, the event ID is recorded in UnbalancedEvents and none of
  its legs reach the ledger. Partial posting is never allowed.

ROUNDING:
  Every delta's debit and credit are rounded under the supplied policy
  before the balance check and before posting, so downstream aggregation
  works on exactly the figures that were validated.
*/
package ledger

import "github.com/shopspring/decimal"

// PostingResult bundles the accepted ledger lines with the IDs of rejected
// events. A rejection is a fact in the output, not an error: callers must
// inspect UnbalancedEvents explicitly.
type PostingResult struct {
	Entries          []PostedEntry
	UnbalancedEvents []string
}

// HasErrors reports whether any event was rejected.
func (r PostingResult) HasErrors() bool { return len(r.UnbalancedEvents) > 0 }

// PostEvents validates and posts events in order. For each event the deltas'
// debits and credits are rounded, summed separately, and the event is
// accepted only when the two sums agree within tolerance.
func PostEvents(events []StatementEvent, rounding RoundingPolicy) PostingResult {
	var result PostingResult

	for _, ev := range events {
		totalDebit := decimal.Zero
		totalCredit := decimal.Zero
		rounded := make([]JournalDelta, len(ev.Deltas))
		for i, d := range ev.Deltas {
			d.Debit = rounding.Apply(d.Debit)
			d.Credit = rounding.Apply(d.Credit)
			rounded[i] = d
			totalDebit = totalDebit.Add(d.Debit)
			totalCredit = totalCredit.Add(d.Credit)
		}

		if !WithinTolerance(totalDebit, totalCredit) {
			result.UnbalancedEvents = append(result.UnbalancedEvents, ev.EventID)
			continue
		}

		period := PeriodOf(ev.Date)
		for _, d := range rounded {
			result.Entries = append(result.Entries, PostedEntry{
				EventID:        ev.EventID,
				Period:         period,
				Account:        d.Account,
				Debit:          d.Debit,
				Credit:         d.Credit,
				Classification: d.Classification,
				CashFlowBucket: d.CashFlowBucket,
				Memo:           d.Memo,
			})
		}
	}

	return result
}
