/*
statements.go - Statement derivation from trial balance and posted entries

PURPOSE:
  Derives the three financial statements for a period. All three are pure
  views: recomputing them from the same entries always yields the same
  figures, and nothing here writes back to the ledger.

INCOME STATEMENT:
  Partitions trial-balance rows by IS classification;
  net income = revenue - expenses.

BALANCE SHEET:
  Partitions cumulative trial-balance rows into assets (including deferred
  assets), liabilities, and equity, then injects a synthetic
  RETAINED_EARNINGS equity line equal to cumulative net income through the
  period. The retained-earnings line is never posted to, so it cannot drift
  from the income statements it is derived from.

CASH FLOW STATEMENT:
  Derived exclusively from legs on the CASH account, exploiting double
  entry: every cash-affecting posting has a CASH leg. Debit to cash is an
  inflow, credit an outflow, bucketed by the leg's cash-flow bucket. A CASH
  leg without a bucket is excluded here and will surface as a CF_TIEOUT
  variance during reconciliation rather than being silently classified.
*/
package ledger

import "github.com/shopspring/decimal"

// StatementLine is one account's contribution to a statement section.
type StatementLine struct {
	Account string
	Amount  decimal.Decimal
}

// =============================================================================
// INCOME STATEMENT
// =============================================================================

// IncomeStatement is the period-scoped revenue/expense view.
type IncomeStatement struct {
	Period        Period
	Revenue       []StatementLine
	Expenses      []StatementLine
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// BuildIncomeStatement derives the income statement from a trial balance.
// The trial balance must have been built for the same period.
func BuildIncomeStatement(tb []TrialBalanceEntry, reg *Registry, period Period) IncomeStatement {
	is := IncomeStatement{Period: period}

	for _, row := range tb {
		def, ok := reg.Lookup(row.Account)
		if !ok {
			continue // trial-balance construction already guarantees known accounts
		}
		switch def.Classification {
		case ClassRevenue:
			is.Revenue = append(is.Revenue, StatementLine{Account: row.Account, Amount: row.Balance})
			is.TotalRevenue = is.TotalRevenue.Add(row.Balance)
		case ClassExpense:
			is.Expenses = append(is.Expenses, StatementLine{Account: row.Account, Amount: row.Balance})
			is.TotalExpenses = is.TotalExpenses.Add(row.Balance)
		}
	}

	is.NetIncome = is.TotalRevenue.Sub(is.TotalExpenses)
	return is
}

// =============================================================================
// BALANCE SHEET
// =============================================================================

// BalanceSheet is the cumulative position view for a period.
type BalanceSheet struct {
	Period           Period
	Assets           []StatementLine
	Liabilities      []StatementLine
	Equity           []StatementLine
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	Balanced         bool
}

// BuildBalanceSheet derives the balance sheet from a cumulative trial
// balance, threading cumulative net income through the period into the
// synthetic retained-earnings line.
func BuildBalanceSheet(tb []TrialBalanceEntry, reg *Registry, period Period, cumulativeNetIncome decimal.Decimal) BalanceSheet {
	bs := BalanceSheet{Period: period}

	for _, row := range tb {
		def, ok := reg.Lookup(row.Account)
		if !ok {
			continue
		}
		line := StatementLine{Account: row.Account, Amount: row.Balance}
		switch def.Classification {
		case ClassAsset, ClassDeferred:
			bs.Assets = append(bs.Assets, line)
			bs.TotalAssets = bs.TotalAssets.Add(row.Balance)
		case ClassLiability:
			bs.Liabilities = append(bs.Liabilities, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(row.Balance)
		case ClassEquity:
			bs.Equity = append(bs.Equity, line)
			bs.TotalEquity = bs.TotalEquity.Add(row.Balance)
		}
	}

	bs.Equity = append(bs.Equity, StatementLine{Account: AccountRetainedEarnings, Amount: cumulativeNetIncome})
	bs.TotalEquity = bs.TotalEquity.Add(cumulativeNetIncome)

	bs.Balanced = WithinTolerance(bs.TotalAssets, bs.TotalLiabilities.Add(bs.TotalEquity))
	return bs
}

// RetainedEarnings returns the synthetic retained-earnings amount on the
// sheet, or zero when absent.
func (bs BalanceSheet) RetainedEarnings() decimal.Decimal {
	for _, line := range bs.Equity {
		if line.Account == AccountRetainedEarnings {
			return line.Amount
		}
	}
	return decimal.Zero
}

// =============================================================================
// CASH FLOW STATEMENT
// =============================================================================

// CashFlowStatement is the period's cash movement by bucket.
type CashFlowStatement struct {
	Period        Period
	Operating     decimal.Decimal
	Investing     decimal.Decimal
	Financing     decimal.Decimal
	NetCashChange decimal.Decimal
}

// BuildCashFlow derives the cash flow statement for a period from CASH
// account legs dated within it.
func BuildCashFlow(entries []PostedEntry, period Period) CashFlowStatement {
	cf := CashFlowStatement{Period: period}

	for _, e := range entries {
		if e.Account != AccountCash || e.Period != period {
			continue
		}
		flow := e.Debit.Sub(e.Credit) // debit to cash is an inflow
		switch e.CashFlowBucket {
		case BucketOperating:
			cf.Operating = cf.Operating.Add(flow)
		case BucketInvesting:
			cf.Investing = cf.Investing.Add(flow)
		case BucketFinancing:
			cf.Financing = cf.Financing.Add(flow)
		}
	}

	cf.NetCashChange = cf.Operating.Add(cf.Investing).Add(cf.Financing)
	return cf
}
