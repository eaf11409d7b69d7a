package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

func postFixture(t *testing.T) []ledger.PostedEntry {
	t.Helper()
	events := []ledger.StatementEvent{
		equityFundingEvent("ev-jan", day(2025, time.January, 2), 100_000),
		operatingEvent("ev-feb", day(2025, time.February, 10), 50_000, 8_000),
		operatingEvent("ev-mar", day(2025, time.March, 10), 60_000, 8_000),
	}
	result := ledger.PostEvents(events, ledger.DefaultRounding)
	require.Empty(t, result.UnbalancedEvents)
	return result.Entries
}

func balanceOf(t *testing.T, tb []ledger.TrialBalanceEntry, account string) ledger.TrialBalanceEntry {
	t.Helper()
	for _, row := range tb {
		if row.Account == account {
			return row
		}
	}
	t.Fatalf("account %s not in trial balance", account)
	return ledger.TrialBalanceEntry{}
}

func TestTrialBalance_BalanceSheetAccountsCumulative(t *testing.T) {
	entries := postFixture(t)
	reg := testRegistry(t)

	// March cash = 100,000 equity + 42,000 Feb + 52,000 Mar operating
	tb, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.March})
	require.NoError(t, err)
	requireAmount(t, "194000", balanceOf(t, tb, "CASH").Balance)

	// Equity persists from January even with no March activity
	requireAmount(t, "100000", balanceOf(t, tb, "EQUITY_CONTRIBUTIONS").Balance)
}

func TestTrialBalance_IncomeAccountsResetEachPeriod(t *testing.T) {
	entries := postFixture(t)
	reg := testRegistry(t)

	feb, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.February})
	require.NoError(t, err)
	requireAmount(t, "50000", balanceOf(t, feb, "ROOM_REVENUE").Balance)

	mar, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.March})
	require.NoError(t, err)
	// March revenue is March only, not 110,000 cumulative
	requireAmount(t, "60000", balanceOf(t, mar, "ROOM_REVENUE").Balance)

	// January has no income-statement rows at all
	jan, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.January})
	require.NoError(t, err)
	for _, row := range jan {
		assert.NotEqual(t, "ROOM_REVENUE", row.Account)
		assert.NotEqual(t, "INTEREST_EXPENSE", row.Account)
	}
}

func TestTrialBalance_SignFollowsNormalSide(t *testing.T) {
	entries := postFixture(t)
	reg := testRegistry(t)

	tb, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.February})
	require.NoError(t, err)

	// Credit-normal revenue: credit total minus debit total.
	rev := balanceOf(t, tb, "ROOM_REVENUE")
	requireAmount(t, "0", rev.DebitTotal)
	requireAmount(t, "50000", rev.CreditTotal)
	requireAmount(t, "50000", rev.Balance)

	// Debit-normal expense.
	exp := balanceOf(t, tb, "INTEREST_EXPENSE")
	requireAmount(t, "8000", exp.Balance)
}

func TestTrialBalance_UnknownAccountFails(t *testing.T) {
	reg := testRegistry(t)
	entries := []ledger.PostedEntry{{
		EventID: "ev-x", Account: "GHOST", Period: ledger.Period{Year: 2025, Month: time.January},
		Classification: ledger.ClassAsset,
	}}

	_, err := ledger.BuildTrialBalance(entries, reg, ledger.Period{Year: 2025, Month: time.January})
	require.Error(t, err)
	assert.ErrorIs(t, err, ledger.ErrUnknownAccount)

	var detail *ledger.UnknownAccountError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "GHOST", detail.Account)
	assert.Equal(t, "ev-x", detail.EventID)
}
