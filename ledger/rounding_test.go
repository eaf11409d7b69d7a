package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

func TestRounding_Standard_HalfAwayFromZero(t *testing.T) {
	policy := ledger.RoundingPolicy{Precision: 2}

	requireAmount(t, "1.13", policy.Apply(decimal.NewFromFloat(1.125)))
	requireAmount(t, "1.12", policy.Apply(decimal.NewFromFloat(1.124)))
	requireAmount(t, "-1.13", policy.Apply(decimal.NewFromFloat(-1.125)))
}

func TestRounding_Bankers_HalfToEven(t *testing.T) {
	policy := ledger.RoundingPolicy{Precision: 2, Bankers: true}

	requireAmount(t, "1.12", policy.Apply(decimal.NewFromFloat(1.125)))
	requireAmount(t, "1.14", policy.Apply(decimal.NewFromFloat(1.135)))
}

func TestRounding_ZeroPrecision(t *testing.T) {
	policy := ledger.RoundingPolicy{Precision: 0}

	requireAmount(t, "2", policy.Apply(decimal.NewFromFloat(1.5)))
	requireAmount(t, "1", policy.Apply(decimal.NewFromFloat(1.4)))
}

func TestRounding_ApplyFloat(t *testing.T) {
	policy := ledger.RoundingPolicy{Precision: 2}

	requireAmount(t, "599.55", policy.ApplyFloat(599.5505))
	requireAmount(t, "0", policy.ApplyFloat(0))
}

func TestWithinTolerance(t *testing.T) {
	a := decimal.NewFromFloat(100.004)
	b := decimal.NewFromFloat(100.00)

	assert.True(t, ledger.WithinTolerance(a, b))
	assert.False(t, ledger.WithinTolerance(decimal.NewFromFloat(100.02), b))
}
