/*
Package returns computes equity return metrics from a signed cash-flow
series: MOIC, DPI, cash-on-cash, and IRR. Negative flows are capital
invested, positive flows are distributions back to equity.

The series is assumed fully realized, so DPI equals MOIC. Metric figures are
rounded under the caller's policy; the IRR rate itself is reported at solver
precision since it is a rate, not a monetary amount.
*/
package returns

import (
	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// ReturnMetrics bundles the realized return profile of an equity series.
type ReturnMetrics struct {
	TotalInvested      decimal.Decimal
	TotalDistributions decimal.Decimal
	NetProfit          decimal.Decimal
	MOIC               decimal.Decimal
	DPI                decimal.Decimal
	CashOnCash         decimal.Decimal
	IRR                IRRResult
}

// ComputeMetrics derives all metrics from the series. periodsPerYear scales
// elapsed time for cash-on-cash and annualizes the IRR (12 for monthly
// flows, 1 for annual).
func ComputeMetrics(flows []decimal.Decimal, periodsPerYear int, rounding ledger.RoundingPolicy) ReturnMetrics {
	var m ReturnMetrics

	net := decimal.Zero
	for _, cf := range flows {
		net = net.Add(cf)
		if cf.IsNegative() {
			m.TotalInvested = m.TotalInvested.Add(cf.Abs())
		} else {
			m.TotalDistributions = m.TotalDistributions.Add(cf)
		}
	}
	m.TotalInvested = rounding.Apply(m.TotalInvested)
	m.TotalDistributions = rounding.Apply(m.TotalDistributions)
	m.NetProfit = rounding.Apply(m.TotalDistributions.Sub(m.TotalInvested))

	if m.TotalInvested.IsPositive() {
		m.MOIC = rounding.Apply(m.TotalDistributions.Div(m.TotalInvested))

		if len(flows) > 0 && periodsPerYear > 0 {
			elapsedYears := decimal.NewFromInt(int64(len(flows))).
				Div(decimal.NewFromInt(int64(periodsPerYear)))
			if elapsedYears.IsPositive() {
				annualNet := net.Div(elapsedYears)
				m.CashOnCash = rounding.Apply(annualNet.Div(m.TotalInvested))
			}
		}
	}
	m.DPI = m.MOIC // fully realized series

	floatFlows := make([]float64, len(flows))
	for i, cf := range flows {
		floatFlows[i] = cf.InexactFloat64()
	}
	m.IRR = SolveIRR(floatFlows, periodsPerYear)

	return m
}
