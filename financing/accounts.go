package financing

import "github.com/ricardocidale/LB-Hospitality-sub008/ledger"

// Account codes the builders post to. The default chart in factory/chart.go
// defines every one of these; keep the two in sync.
const (
	AccountProperty         = "PROPERTY"
	AccountDeferredFinCosts = "DEFERRED_FINANCING_COSTS"
	AccountLoanPayable      = "LOAN_PAYABLE"
	AccountEquityContrib    = "EQUITY_CONTRIBUTIONS"
	AccountClosingCostExp   = "CLOSING_COST_EXPENSE"
	AccountPrepayPenaltyExp = "PREPAYMENT_PENALTY_EXPENSE"
	AccountInterestExpense  = "INTEREST_EXPENSE"
	AccountRoomRevenue      = "ROOM_REVENUE"
	AccountOperatingExpense = "OPERATING_EXPENSE"
)

// Re-export the engine's well-known cash account for callers assembling
// deltas by hand.
const AccountCash = ledger.AccountCash
