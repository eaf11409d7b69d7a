/*
trialbalance.go - Per-account aggregation for a period

PURPOSE:
  Aggregates posted entries into per-account debit/credit totals for one
  target period, the basis every statement is derived from.

THE CUMULATIVE/PERIODIC SPLIT:
  Balance-sheet accounts (asset, liability, equity, deferred) accumulate
  from inception through the target period. Income-statement accounts
  (revenue, expense) reset each period and include only entries dated within
  the target period. This split is an accounting convention, not derivable
  from the chart, so it is applied explicitly here.

SIGNED BALANCE:
  Each entry's account must exist in the registry; its normal side decides
  the balance sign. Debit-normal: debit minus credit. Credit-normal: credit
  minus debit.
*/
package ledger

import "sort"

// BuildTrialBalance aggregates entries for the target period. Accounts with
// no activity in scope are omitted. Referencing an account the registry does
// not define is a programming error upstream and returns UnknownAccountError.
func BuildTrialBalance(entries []PostedEntry, reg *Registry, period Period) ([]TrialBalanceEntry, error) {
	byAccount := make(map[string]*TrialBalanceEntry)
	var order []string

	for _, e := range entries {
		def, ok := reg.Lookup(e.Account)
		if !ok {
			return nil, &UnknownAccountError{Account: e.Account, EventID: e.EventID}
		}

		if def.Classification.IsBalanceSheet() {
			if e.Period.index() > period.index() {
				continue
			}
		} else {
			if e.Period != period {
				continue
			}
		}

		tb, seen := byAccount[e.Account]
		if !seen {
			tb = &TrialBalanceEntry{Account: e.Account}
			byAccount[e.Account] = tb
			order = append(order, e.Account)
		}
		tb.DebitTotal = tb.DebitTotal.Add(e.Debit)
		tb.CreditTotal = tb.CreditTotal.Add(e.Credit)
	}

	sort.Strings(order)
	out := make([]TrialBalanceEntry, 0, len(order))
	for _, code := range order {
		tb := byAccount[code]
		def, _ := reg.Lookup(code)
		if def.NormalSide == SideDebit {
			tb.Balance = tb.DebitTotal.Sub(tb.CreditTotal)
		} else {
			tb.Balance = tb.CreditTotal.Sub(tb.DebitTotal)
		}
		out = append(out, *tb)
	}

	return out, nil
}
