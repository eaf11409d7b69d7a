/*
sizing.go - Loan sizing under LTV and DSCR constraints, and loan payoff

PURPOSE:
  Resolves the maximum supportable loan for a property under a loan-to-value
  ceiling and, when underwriting data is supplied, a debt-service coverage
  ceiling. Exactly one constraint is reported as binding.

DSCR BASIS:
  The DSCR ceiling always uses the amortizing-period loan constant, i.e. the
  worst-case post-IO debt service, even when an interest-only period exists.
  The result records the basis so callers can see which debt service was
  assumed.
*/
package debt

import (
	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// =============================================================================
// VALUATION - Tagged union: direct value or NOI capitalization
// =============================================================================

// ValuationKind discriminates how the property value is resolved.
type ValuationKind string

const (
	ValuationDirect ValuationKind = "direct"
	ValuationNOICap ValuationKind = "noi_cap"
)

// Valuation resolves a property value either directly or as
// stabilized NOI divided by a cap rate.
type Valuation struct {
	Kind          ValuationKind
	Value         decimal.Decimal // direct
	StabilizedNOI decimal.Decimal // noi_cap
	CapRate       float64         // noi_cap
}

// DirectValuation is shorthand for a direct value.
func DirectValuation(value decimal.Decimal) Valuation {
	return Valuation{Kind: ValuationDirect, Value: value}
}

// PropertyValue resolves the valuation to a number.
func (v Valuation) PropertyValue() decimal.Decimal {
	switch v.Kind {
	case ValuationNOICap:
		if v.CapRate == 0 {
			return decimal.Zero
		}
		return v.StabilizedNOI.Div(decimal.NewFromFloat(v.CapRate))
	default:
		return v.Value
	}
}

// =============================================================================
// SIZING
// =============================================================================

// DebtServiceBasisAmortizing records that the DSCR ceiling used the post-IO
// amortizing payment, the only basis this sizing evaluates.
const DebtServiceBasisAmortizing = "amortizing"

// SizingResult reports the resolved loan and which constraint bound it.
// LTVBinding and DSCRBinding are exclusive; LTV binds by default when DSCR
// was not evaluated.
type SizingResult struct {
	PropertyValue    decimal.Decimal
	MaxLoanLTV       decimal.Decimal
	MaxLoanDSCR      decimal.Decimal // zero when DSCR was not evaluated
	DSCREvaluated    bool
	LoanAmount       decimal.Decimal
	LTVBinding       bool
	DSCRBinding      bool
	DebtServiceBasis string
}

// ComputeSizing resolves the loan amount. DSCR is evaluated only when both
// dscrMin and noiForDSCR are positive; otherwise the LTV ceiling stands
// alone and binds.
func ComputeSizing(valuation Valuation, ltvMax float64, terms LoanTerms, dscrMin float64, noiForDSCR decimal.Decimal, rounding ledger.RoundingPolicy) SizingResult {
	result := SizingResult{
		PropertyValue:    rounding.Apply(valuation.PropertyValue()),
		DebtServiceBasis: DebtServiceBasisAmortizing,
	}

	result.MaxLoanLTV = rounding.Apply(result.PropertyValue.Mul(decimal.NewFromFloat(ltvMax)))
	result.LoanAmount = result.MaxLoanLTV
	result.LTVBinding = true

	if dscrMin > 0 && noiForDSCR.IsPositive() {
		// Annual debt service per unit of principal is 12*k on the full
		// amortization length: worst case once any IO period has run off.
		k := AmortizingConstant(terms.MonthlyRate(), terms.AmortizationMonths)
		if k > 0 {
			divisor := decimal.NewFromFloat(12 * k * dscrMin)
			result.MaxLoanDSCR = rounding.Apply(noiForDSCR.Div(divisor))
			result.DSCREvaluated = true
			if result.MaxLoanDSCR.LessThan(result.MaxLoanLTV) {
				result.LoanAmount = result.MaxLoanDSCR
				result.LTVBinding = false
				result.DSCRBinding = true
			}
		}
	}

	return result
}

// =============================================================================
// PAYOFF
// =============================================================================

// PenaltyType discriminates how a prepayment penalty is computed.
type PenaltyType string

const (
	PenaltyNone         PenaltyType = "none"
	PenaltyPctOfBalance PenaltyType = "pct_of_balance"
	PenaltyFixed        PenaltyType = "fixed"
)

// PrepaymentPenalty is a tagged penalty definition. Value is a fraction for
// pct_of_balance and an absolute amount for fixed.
type PrepaymentPenalty struct {
	Type  PenaltyType
	Value decimal.Decimal
}

// PayoffResult is the full cost of retiring a loan early.
type PayoffResult struct {
	Balance           decimal.Decimal
	PrepaymentPenalty decimal.Decimal
	AccruedInterest   decimal.Decimal
	Total             decimal.Decimal
}

// ComputePayoff totals the outstanding balance, the penalty, and accrued
// interest due at payoff.
func ComputePayoff(balance decimal.Decimal, penalty PrepaymentPenalty, accruedInterest decimal.Decimal, rounding ledger.RoundingPolicy) PayoffResult {
	result := PayoffResult{
		Balance:         rounding.Apply(balance),
		AccruedInterest: rounding.Apply(accruedInterest),
	}

	switch penalty.Type {
	case PenaltyPctOfBalance:
		result.PrepaymentPenalty = rounding.Apply(result.Balance.Mul(penalty.Value))
	case PenaltyFixed:
		result.PrepaymentPenalty = rounding.Apply(penalty.Value)
	}

	result.Total = result.Balance.Add(result.PrepaymentPenalty).Add(result.AccruedInterest)
	return result
}
