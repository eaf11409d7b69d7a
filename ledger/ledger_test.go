package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// =============================================================================
// SHARED TEST HELPERS
// =============================================================================

func testRegistry(t *testing.T) *ledger.Registry {
	t.Helper()
	reg, err := ledger.NewRegistry([]ledger.AccountDef{
		{Code: "CASH", Name: "Cash", NormalSide: ledger.SideDebit, Classification: ledger.ClassAsset},
		{Code: "PROPERTY", Name: "Property", NormalSide: ledger.SideDebit, Classification: ledger.ClassAsset},
		{Code: "DEFERRED_FINANCING_COSTS", Name: "Deferred Financing Costs", NormalSide: ledger.SideDebit, Classification: ledger.ClassDeferred},
		{Code: "LOAN_PAYABLE", Name: "Loan Payable", NormalSide: ledger.SideCredit, Classification: ledger.ClassLiability},
		{Code: "EQUITY_CONTRIBUTIONS", Name: "Equity Contributions", NormalSide: ledger.SideCredit, Classification: ledger.ClassEquity},
		{Code: "ROOM_REVENUE", Name: "Room Revenue", NormalSide: ledger.SideCredit, Classification: ledger.ClassRevenue},
		{Code: "INTEREST_EXPENSE", Name: "Interest Expense", NormalSide: ledger.SideDebit, Classification: ledger.ClassExpense},
	})
	require.NoError(t, err)
	return reg
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// requireAmount fails unless actual equals the expected decimal string.
func requireAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want, err := decimal.NewFromString(expected)
	require.NoError(t, err)
	require.True(t, want.Equal(actual), "expected %s, got %s", want, actual)
}

// debit/credit build single-sided deltas against the shared test chart.
func debit(account string, class ledger.Classification, bucket ledger.CashFlowBucket, amount int64) ledger.JournalDelta {
	return ledger.JournalDelta{Account: account, Debit: dec(amount), Classification: class, CashFlowBucket: bucket}
}

func credit(account string, class ledger.Classification, bucket ledger.CashFlowBucket, amount int64) ledger.JournalDelta {
	return ledger.JournalDelta{Account: account, Credit: dec(amount), Classification: class, CashFlowBucket: bucket}
}

// equityFundingEvent moves cash in against equity (FINANCING bucket).
func equityFundingEvent(id string, date time.Time, amount int64) ledger.StatementEvent {
	return ledger.StatementEvent{
		EventID:   id,
		EventType: "capital_funding",
		Date:      date,
		EntityID:  "entity-1",
		Deltas: []ledger.JournalDelta{
			debit("CASH", ledger.ClassAsset, ledger.BucketFinancing, amount),
			credit("EQUITY_CONTRIBUTIONS", ledger.ClassEquity, ledger.BucketNone, amount),
		},
	}
}

// operatingEvent books revenue and interest for one month.
func operatingEvent(id string, date time.Time, revenue, interest int64) ledger.StatementEvent {
	return ledger.StatementEvent{
		EventID:   id,
		EventType: "operations",
		Date:      date,
		EntityID:  "entity-1",
		Deltas: []ledger.JournalDelta{
			debit("CASH", ledger.ClassAsset, ledger.BucketOperating, revenue),
			credit("ROOM_REVENUE", ledger.ClassRevenue, ledger.BucketNone, revenue),
			debit("INTEREST_EXPENSE", ledger.ClassExpense, ledger.BucketNone, interest),
			credit("CASH", ledger.ClassAsset, ledger.BucketOperating, interest),
		},
	}
}
