package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/factory"
	"github.com/ricardocidale/LB-Hospitality-sub008/financing"
	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
	"github.com/ricardocidale/LB-Hospitality-sub008/store/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// sampleRun applies a levered acquisition so the saved output carries
// entries, checks, and fractional decimals worth round-tripping.
func sampleRun(t *testing.T) *ledger.ApplierOutput {
	t.Helper()
	in := financing.AcquisitionInput{
		EntityID:      "lb-hotel-001",
		Date:          time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		PurchasePrice: decimal.RequireFromString("2300000.50"),
		LoanAmount:    decimal.NewFromInt(1_725_000),
		ClosingCosts:  decimal.RequireFromString("55000.25"),
	}
	ev := financing.BuildAcquisition(in, financing.DefaultPolicy, ledger.DefaultRounding)

	out, err := ledger.ApplyEvents([]ledger.StatementEvent{ev}, factory.DefaultRegistry(), ledger.DefaultRounding)
	require.NoError(t, err)
	return out
}

func TestSaveRun_LoadRun_RoundTrip(t *testing.T) {
	// GIVEN: A completed statement run with fractional-cent decimals
	// WHEN: Saving and reloading it
	// THEN: Every entry and check compares equal to what was saved

	store := newTestStore(t)
	ctx := context.Background()
	out := sampleRun(t)

	runID, err := store.SaveRun(ctx, "acquisition close", out)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	run, err := store.LoadRun(ctx, runID)
	require.NoError(t, err)

	assert.Equal(t, runID, run.ID)
	assert.Equal(t, "acquisition close", run.Label)
	assert.Equal(t, len(out.Entries), run.EntryCount)
	assert.False(t, run.HasPostingErrors)
	assert.True(t, run.AllPassed)
	assert.Empty(t, run.UnbalancedEvents)
	assert.WithinDuration(t, time.Now().UTC(), run.CreatedAt, time.Minute)

	require.Len(t, run.Entries, len(out.Entries))
	for i, got := range run.Entries {
		want := out.Entries[i]
		assert.Equal(t, want.EventID, got.EventID)
		assert.Equal(t, want.Period, got.Period)
		assert.Equal(t, want.Account, got.Account)
		assert.True(t, want.Debit.Equal(got.Debit), "entry %d debit %s vs %s", i, want.Debit, got.Debit)
		assert.True(t, want.Credit.Equal(got.Credit), "entry %d credit", i)
		assert.Equal(t, want.Classification, got.Classification)
		assert.Equal(t, want.CashFlowBucket, got.CashFlowBucket)
		assert.Equal(t, want.Memo, got.Memo)
	}

	require.Len(t, run.Checks, len(out.Reconciliation.Checks))
	for i, got := range run.Checks {
		want := out.Reconciliation.Checks[i]
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Period, got.Period)
		assert.Equal(t, want.Passed, got.Passed)
		assert.True(t, want.Expected.Equal(got.Expected), "check %d expected", i)
		assert.True(t, want.Variance.Equal(got.Variance), "check %d variance", i)
		assert.Equal(t, want.GAAPRef, got.GAAPRef)
	}
}

func TestSaveRun_UnbalancedEventsPersisted(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	out := sampleRun(t)
	out.UnbalancedEvents = []string{"ev-bad-1", "ev-bad-2"}
	out.HasPostingErrors = true

	runID, err := store.SaveRun(ctx, "", out)
	require.NoError(t, err)

	run, err := store.LoadRun(ctx, runID)
	require.NoError(t, err)
	assert.True(t, run.HasPostingErrors)
	assert.Equal(t, []string{"ev-bad-1", "ev-bad-2"}, run.UnbalancedEvents)
}

func TestLoadRun_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoadRun(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListRuns_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	out := sampleRun(t)

	firstID, err := store.SaveRun(ctx, "first", out)
	require.NoError(t, err)
	secondID, err := store.SaveRun(ctx, "second", out)
	require.NoError(t, err)

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	ids := []string{runs[0].ID, runs[1].ID}
	assert.Contains(t, ids, firstID)
	assert.Contains(t, ids, secondID)
	assert.Equal(t, len(out.Entries), runs[0].EntryCount)
	// Same-second timestamps fall back to ID order; both orderings keep the
	// newest run no later than the oldest.
	assert.True(t, !runs[0].CreatedAt.Before(runs[1].CreatedAt))
}

func TestListRuns_Empty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestSaveRun_DistinctIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	out := sampleRun(t)

	a, err := store.SaveRun(ctx, "run", out)
	require.NoError(t, err)
	b, err := store.SaveRun(ctx, "run", out)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
