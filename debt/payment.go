/*
Package debt provides the debt-service numeric library: payment formulas,
amortization schedules, loan sizing under LTV/DSCR constraints, and loan
payoff computation.

The package is independent of the ledger: it produces the figures the
financing builders later turn into journal deltas. Rates run in float64 for
the power computations; money is decimal.Decimal, rounded under the caller's
policy before being carried forward.
*/
package debt

import (
	"math"

	"github.com/shopspring/decimal"
)

// Pmt computes the level payment for a fully amortizing loan:
// P*r*(1+r)^n / ((1+r)^n - 1). Zero rate degrades to an even split; zero
// principal or zero payments yields zero. All real inputs are defined, so
// there is no error return.
func Pmt(principal decimal.Decimal, monthlyRate float64, totalPayments int) decimal.Decimal {
	if principal.IsZero() || totalPayments == 0 {
		return decimal.Zero
	}
	if monthlyRate == 0 {
		return principal.Div(decimal.NewFromInt(int64(totalPayments)))
	}
	factor := math.Pow(1+monthlyRate, float64(totalPayments))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment)
}

// IOPayment is the interest-only payment on a balance.
func IOPayment(balance decimal.Decimal, monthlyRate float64) decimal.Decimal {
	return balance.Mul(decimal.NewFromFloat(monthlyRate))
}

// AmortizingConstant is the periodic loan constant k = r(1+r)^n/((1+r)^n-1),
// the payment per unit of principal. Zero rate degrades to 1/n.
func AmortizingConstant(monthlyRate float64, totalPayments int) float64 {
	if totalPayments == 0 {
		return 0
	}
	if monthlyRate == 0 {
		return 1 / float64(totalPayments)
	}
	factor := math.Pow(1+monthlyRate, float64(totalPayments))
	return monthlyRate * factor / (factor - 1)
}
