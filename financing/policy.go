/*
policy.go - Accounting policy driving delta construction

PURPOSE:
  The builders never hard-code classification decisions that GAAP leaves to
  policy. Today that is one choice: whether debt issuance costs are
  capitalized as a deferred asset or expensed immediately.

Rules that are NOT policy (they are invariants and not configurable):
  - Equity contributions never touch the income statement
  - New debt issuance is a FINANCING credit to a liability
  - Debt payoff is the symmetric FINANCING debit
*/
package financing

// CostTreatment says where debt issuance costs land.
type CostTreatment string

const (
	CostsDeferred CostTreatment = "deferred" // capitalize as BS_DEFERRED asset
	CostsExpensed CostTreatment = "expensed" // hit the income statement now
)

// AccountingPolicy carries the configurable classification choices.
type AccountingPolicy struct {
	DebtIssuanceCosts CostTreatment
}

// DefaultPolicy capitalizes issuance costs, the usual GAAP treatment for
// costs incurred to obtain financing.
var DefaultPolicy = AccountingPolicy{DebtIssuanceCosts: CostsDeferred}
