/*
rounding.go - Fixed-precision rounding policy

PURPOSE:
  Every monetary computation in the engine rounds through one of these
  policies before a value is carried forward. Compounding therefore happens
  on already-rounded balances, matching how figures appear on real
  statements, instead of on infinite-precision intermediates.

MODES:
  Standard: round half away from zero (decimal.Round)
  Bankers:  round half to even (decimal.RoundBank)

The policy is passed explicitly through every call. There is no package-level
default precision that a caller could mutate.
*/
package ledger

import "github.com/shopspring/decimal"

// RoundingPolicy applies fixed-precision rounding to monetary values.
type RoundingPolicy struct {
	Precision int32
	Bankers   bool
}

// DefaultRounding is cent precision with standard (half away from zero)
// rounding, the mode statements are conventionally prepared under.
var DefaultRounding = RoundingPolicy{Precision: 2}

// Apply rounds d under the policy.
func (p RoundingPolicy) Apply(d decimal.Decimal) decimal.Decimal {
	if p.Bankers {
		return d.RoundBank(p.Precision)
	}
	return d.Round(p.Precision)
}

// ApplyFloat rounds a float64 under the policy, for values produced by the
// power and root-finding routines that run in float space.
func (p RoundingPolicy) ApplyFloat(f float64) decimal.Decimal {
	return p.Apply(decimal.NewFromFloat(f))
}

// BalanceTolerance is the absolute tolerance used when comparing two figures
// that should agree: posting balance checks and reconciliation tie-outs.
var BalanceTolerance = decimal.New(1, -2) // 0.01

// WithinTolerance reports whether a and b differ by less than the posting
// tolerance.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(BalanceTolerance)
}
