/*
reconcile.go - Cross-statement tie-out checks

PURPOSE:
  Validates internal consistency of a completed statement run. Each check is
  a fact (expected, actual, variance, pass/fail) rather than a decision;
  a single failing check in any period fails the whole run.

CHECK FAMILIES (per period):
  BS_BALANCE: assets == liabilities + equity
  CF_TIEOUT:  statement net cash change == actual change in the CASH balance
  IS_TO_RE:   cumulative net income == synthetic retained-earnings balance

The CF_TIEOUT check doubles as the guard for the cash flow statement's
simplifying assumption: a CASH leg posted without a cash-flow bucket shows
up here as a variance because it moves the CASH balance without appearing
in any statement section.
*/
package ledger

import "github.com/shopspring/decimal"

// GAAP references cited on each check family.
const (
	gaapFrameworkRef = "FASB Conceptual Framework"
	gaapASC230Ref    = "ASC 230"
)

// Check names.
const (
	CheckBSBalance = "BS_BALANCE"
	CheckCFTieout  = "CF_TIEOUT"
	CheckISToRE    = "IS_TO_RE"
)

// ReconciliationCheck is one tie-out outcome.
type ReconciliationCheck struct {
	Name     string
	Period   Period
	Passed   bool
	Expected decimal.Decimal
	Actual   decimal.Decimal
	Variance decimal.Decimal
	GAAPRef  string
}

// ReconciliationResult aggregates every check across every period.
type ReconciliationResult struct {
	Checks    []ReconciliationCheck
	AllPassed bool
}

func newCheck(name string, period Period, expected, actual decimal.Decimal, ref string) ReconciliationCheck {
	variance := actual.Sub(expected)
	return ReconciliationCheck{
		Name:     name,
		Period:   period,
		Passed:   variance.Abs().LessThan(BalanceTolerance),
		Expected: expected,
		Actual:   actual,
		Variance: variance,
		GAAPRef:  ref,
	}
}

// Reconcile runs all three check families over the per-period statements.
// Entries are the full posted set, needed to compute actual CASH balance
// deltas independently of the cash flow statements under test.
func Reconcile(periods []PeriodStatements, entries []PostedEntry) ReconciliationResult {
	result := ReconciliationResult{AllPassed: true}

	cumulativeNetIncome := decimal.Zero
	priorCash := decimal.Zero

	for _, ps := range periods {
		cumulativeNetIncome = cumulativeNetIncome.Add(ps.Income.NetIncome)

		// BS_BALANCE: the accounting equation must hold.
		bs := ps.Balance
		result.Checks = append(result.Checks, newCheck(
			CheckBSBalance, ps.Period,
			bs.TotalLiabilities.Add(bs.TotalEquity), bs.TotalAssets,
			gaapFrameworkRef,
		))

		// CF_TIEOUT: statement net change vs the CASH account's actual move.
		cashBalance := cashBalanceThrough(entries, ps.Period)
		actualDelta := cashBalance.Sub(priorCash)
		priorCash = cashBalance
		result.Checks = append(result.Checks, newCheck(
			CheckCFTieout, ps.Period,
			actualDelta, ps.CashFlow.NetCashChange,
			gaapASC230Ref,
		))

		// IS_TO_RE: income statements must roll up into retained earnings.
		result.Checks = append(result.Checks, newCheck(
			CheckISToRE, ps.Period,
			cumulativeNetIncome, bs.RetainedEarnings(),
			gaapFrameworkRef,
		))
	}

	for _, c := range result.Checks {
		if !c.Passed {
			result.AllPassed = false
			break
		}
	}
	return result
}

// cashBalanceThrough sums the CASH account from inception through period.
func cashBalanceThrough(entries []PostedEntry, period Period) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		if e.Account != AccountCash || e.Period.index() > period.index() {
			continue
		}
		balance = balance.Add(e.Debit).Sub(e.Credit)
	}
	return balance
}
