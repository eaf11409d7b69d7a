package returns_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
	"github.com/ricardocidale/LB-Hospitality-sub008/returns"
)

func flows(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func requireAmount(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want, err := decimal.NewFromString(expected)
	require.NoError(t, err)
	require.True(t, want.Equal(actual), "expected %s, got %s", want, actual)
}

func TestComputeMetrics_SimpleDouble(t *testing.T) {
	// GIVEN: 100 invested, 200 returned one year later
	// WHEN: Computing the metrics
	// THEN: MOIC and DPI are 2, IRR is 100%

	m := returns.ComputeMetrics(flows(-100, 200), 1, ledger.DefaultRounding)

	requireAmount(t, "100", m.TotalInvested)
	requireAmount(t, "200", m.TotalDistributions)
	requireAmount(t, "100", m.NetProfit)
	requireAmount(t, "2", m.MOIC)
	requireAmount(t, "2", m.DPI)
	// Net 100 over 2 elapsed years on 100 invested.
	requireAmount(t, "0.5", m.CashOnCash)
	require.True(t, m.IRR.Converged)
	assert.InDelta(t, 1.0, m.IRR.Periodic, 1e-6)
}

func TestComputeMetrics_DPIEqualsMOIC(t *testing.T) {
	m := returns.ComputeMetrics(flows(-500, -250, 300, 300, 450), 4, ledger.DefaultRounding)

	assert.True(t, m.DPI.Equal(m.MOIC))
	requireAmount(t, "750", m.TotalInvested)
	requireAmount(t, "1050", m.TotalDistributions)
	requireAmount(t, "1.4", m.MOIC)
}

func TestComputeMetrics_InterleavedFlows(t *testing.T) {
	// A mid-life capital call counts as invested, not netted against
	// distributions.
	m := returns.ComputeMetrics(flows(-1000, 400, -200, 600, 500), 1, ledger.DefaultRounding)

	requireAmount(t, "1200", m.TotalInvested)
	requireAmount(t, "1500", m.TotalDistributions)
	requireAmount(t, "300", m.NetProfit)
	requireAmount(t, "1.25", m.MOIC)
}

func TestComputeMetrics_LossMakingSeries(t *testing.T) {
	m := returns.ComputeMetrics(flows(-1000, 800), 1, ledger.DefaultRounding)

	requireAmount(t, "-200", m.NetProfit)
	requireAmount(t, "0.8", m.MOIC)
	assert.True(t, m.CashOnCash.IsNegative())
	require.True(t, m.IRR.Converged)
	assert.InDelta(t, -0.20, m.IRR.Periodic, 1e-6)
}

func TestComputeMetrics_MoreDistributionsNeverLowerTheProfile(t *testing.T) {
	base := returns.ComputeMetrics(flows(-1000, 300, 300, 300), 1, ledger.DefaultRounding)
	better := returns.ComputeMetrics(flows(-1000, 300, 300, 600), 1, ledger.DefaultRounding)

	assert.True(t, better.MOIC.GreaterThan(base.MOIC))
	assert.True(t, better.NetProfit.GreaterThan(base.NetProfit))
	require.True(t, base.IRR.Converged)
	require.True(t, better.IRR.Converged)
	assert.Greater(t, better.IRR.Periodic, base.IRR.Periodic)
}

func TestComputeMetrics_NothingInvested(t *testing.T) {
	// GIVEN: A series with distributions but no capital in
	// WHEN: Computing the metrics
	// THEN: Ratio metrics are zero rather than a division blowup

	m := returns.ComputeMetrics(flows(100, 50), 1, ledger.DefaultRounding)

	assert.True(t, m.MOIC.IsZero())
	assert.True(t, m.DPI.IsZero())
	assert.True(t, m.CashOnCash.IsZero())
	assert.False(t, m.IRR.Converged)
	assert.True(t, math.IsNaN(m.IRR.Periodic))
}

func TestComputeMetrics_EmptySeries(t *testing.T) {
	m := returns.ComputeMetrics(nil, 12, ledger.DefaultRounding)

	assert.True(t, m.TotalInvested.IsZero())
	assert.True(t, m.TotalDistributions.IsZero())
	assert.False(t, m.IRR.Converged)
}

func TestComputeMetrics_MonthlyCashOnCash(t *testing.T) {
	// Twelve monthly flows span exactly one year: -1200 in, then 11 x 120
	// back. Net 120 over one year on 1200 invested is 10%.
	series := append(flows(-1200), flows(120, 120, 120, 120, 120, 120, 120, 120, 120, 120, 120)...)

	m := returns.ComputeMetrics(series, 12, ledger.DefaultRounding)

	requireAmount(t, "0.1", m.CashOnCash)
	assert.True(t, m.IRR.Annualized > m.IRR.Periodic)
}

func TestComputeMetrics_RoundingPolicyApplied(t *testing.T) {
	// 1000 / 300 = 3.333...; bankers at 2dp keeps 3.33.
	m := returns.ComputeMetrics(flows(-300, 1000), 1,
		ledger.RoundingPolicy{Precision: 2, Bankers: true})

	requireAmount(t, "3.33", m.MOIC)
}
