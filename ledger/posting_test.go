package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// =============================================================================
// DOUBLE-ENTRY INVARIANT TESTS
// =============================================================================

func TestPostEvents_BalancedEventAccepted(t *testing.T) {
	// GIVEN: An event whose debits equal its credits
	ev := equityFundingEvent("ev-1", day(2025, time.January, 15), 500_000)

	// WHEN: Posting
	result := ledger.PostEvents([]ledger.StatementEvent{ev}, ledger.DefaultRounding)

	// THEN: Every leg is posted, stamped with the event's month
	require.Empty(t, result.UnbalancedEvents)
	assert.False(t, result.HasErrors())
	require.Len(t, result.Entries, 2)
	for _, e := range result.Entries {
		assert.Equal(t, "ev-1", e.EventID)
		assert.Equal(t, "2025-01", e.Period.String())
	}
}

func TestPostEvents_UnbalancedEventRejectedWhole(t *testing.T) {
	// GIVEN: An event off by more than tolerance
	bad := ledger.StatementEvent{
		EventID: "ev-bad",
		Date:    day(2025, time.January, 20),
		Deltas: []ledger.JournalDelta{
			debit("CASH", ledger.ClassAsset, ledger.BucketFinancing, 100),
			credit("EQUITY_CONTRIBUTIONS", ledger.ClassEquity, ledger.BucketNone, 90),
		},
	}
	good := equityFundingEvent("ev-good", day(2025, time.January, 21), 1_000)

	// WHEN: Posting both
	result := ledger.PostEvents([]ledger.StatementEvent{bad, good}, ledger.DefaultRounding)

	// THEN: The bad event contributes zero entries; the good one still posts
	assert.Equal(t, []string{"ev-bad"}, result.UnbalancedEvents)
	assert.True(t, result.HasErrors())
	require.Len(t, result.Entries, 2)
	for _, e := range result.Entries {
		assert.Equal(t, "ev-good", e.EventID)
	}
}

func TestPostEvents_ImbalanceWithinToleranceAccepted(t *testing.T) {
	// A sub-cent residue must not reject an event.
	ev := ledger.StatementEvent{
		EventID: "ev-residue",
		Date:    day(2025, time.February, 1),
		Deltas: []ledger.JournalDelta{
			{Account: "CASH", Debit: decimal.NewFromFloat(100.004), Classification: ledger.ClassAsset, CashFlowBucket: ledger.BucketFinancing},
			{Account: "EQUITY_CONTRIBUTIONS", Credit: decimal.NewFromFloat(100.001), Classification: ledger.ClassEquity},
		},
	}

	result := ledger.PostEvents([]ledger.StatementEvent{ev}, ledger.DefaultRounding)
	assert.Empty(t, result.UnbalancedEvents)
	require.Len(t, result.Entries, 2)

	// Posted figures are the rounded figures.
	requireAmount(t, "100", result.Entries[0].Debit)
	requireAmount(t, "100", result.Entries[1].Credit)
}

func TestPostEvents_AcceptedEventSumsBalance(t *testing.T) {
	// Double-entry invariant: for any accepted event, posted debit and
	// credit totals agree within tolerance.
	events := []ledger.StatementEvent{
		equityFundingEvent("ev-1", day(2025, time.January, 2), 630_000),
		operatingEvent("ev-2", day(2025, time.February, 10), 50_000, 8_000),
	}

	result := ledger.PostEvents(events, ledger.DefaultRounding)
	require.Empty(t, result.UnbalancedEvents)

	byEvent := make(map[string][]ledger.PostedEntry)
	for _, e := range result.Entries {
		byEvent[e.EventID] = append(byEvent[e.EventID], e)
	}
	for id, entries := range byEvent {
		totalDebit, totalCredit := decimal.Zero, decimal.Zero
		for _, e := range entries {
			totalDebit = totalDebit.Add(e.Debit)
			totalCredit = totalCredit.Add(e.Credit)
		}
		assert.True(t, ledger.WithinTolerance(totalDebit, totalCredit), "event %s out of balance", id)
	}
}

func TestPostEvents_NoEvents(t *testing.T) {
	result := ledger.PostEvents(nil, ledger.DefaultRounding)
	assert.Empty(t, result.Entries)
	assert.False(t, result.HasErrors())
}
