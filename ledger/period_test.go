package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

func TestPeriod_TruncatesDateToMonth(t *testing.T) {
	p := ledger.PeriodOf(day(2025, time.March, 17))
	assert.Equal(t, "2025-03", p.String())
}

func TestPeriod_ParseRoundTrip(t *testing.T) {
	p, err := ledger.ParsePeriod("2025-12")
	require.NoError(t, err)
	assert.Equal(t, ledger.Period{Year: 2025, Month: time.December}, p)

	_, err = ledger.ParsePeriod("2025-13")
	assert.ErrorIs(t, err, ledger.ErrInvalidPeriod)
}

func TestPeriod_OrderingAcrossYearBoundary(t *testing.T) {
	dec := ledger.Period{Year: 2024, Month: time.December}
	jan := ledger.Period{Year: 2025, Month: time.January}

	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.True(t, jan.AfterOrEqual(dec))
	assert.True(t, jan.AfterOrEqual(jan))
	assert.Equal(t, jan, dec.Next())
}

func TestDistinctPeriods_SortedAscending(t *testing.T) {
	entries := []ledger.PostedEntry{
		{Period: ledger.Period{Year: 2025, Month: time.March}},
		{Period: ledger.Period{Year: 2024, Month: time.December}},
		{Period: ledger.Period{Year: 2025, Month: time.March}},
		{Period: ledger.Period{Year: 2025, Month: time.January}},
	}

	periods := ledger.DistinctPeriods(entries)
	require.Len(t, periods, 3)
	assert.Equal(t, "2024-12", periods[0].String())
	assert.Equal(t, "2025-01", periods[1].String())
	assert.Equal(t, "2025-03", periods[2].String())
}
