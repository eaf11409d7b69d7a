package financing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// RefinanceInput describes replacing an existing loan with a new one. The
// payoff figures normally come from debt.ComputePayoff on the old loan's
// schedule.
type RefinanceInput struct {
	EntityID          string
	Date              time.Time
	OldLoanBalance    decimal.Decimal
	PrepaymentPenalty decimal.Decimal
	NewLoanAmount     decimal.Decimal
	ClosingCosts      decimal.Decimal
}

// NetProceeds is the cash left for the sponsor after retiring the old loan
// and settling penalty and costs. Negative means a cash-in refinance.
func (in RefinanceInput) NetProceeds() decimal.Decimal {
	return in.NewLoanAmount.
		Sub(in.OldLoanBalance).
		Sub(in.PrepaymentPenalty).
		Sub(in.ClosingCosts)
}

// BuildRefinance emits the refinance-day event: new debt drawn, old debt
// retired, penalty expensed, closing costs per policy. Debt issuance and
// payoff are always FINANCING-bucket cash movements against the liability.
func BuildRefinance(in RefinanceInput, policy AccountingPolicy, rounding ledger.RoundingPolicy) ledger.StatementEvent {
	ev := ledger.StatementEvent{
		EventID:   newEventID(),
		EventType: EventRefinance,
		Date:      in.Date,
		EntityID:  in.EntityID,
	}

	newLoan := rounding.Apply(in.NewLoanAmount)
	if newLoan.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Debit:          newLoan,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           "refinance loan proceeds",
			},
			ledger.JournalDelta{
				Account:        AccountLoanPayable,
				Credit:         newLoan,
				Classification: ledger.ClassLiability,
				Memo:           "refinance loan proceeds",
			},
		)
	}

	oldBalance := rounding.Apply(in.OldLoanBalance)
	if oldBalance.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        AccountLoanPayable,
				Debit:          oldBalance,
				Classification: ledger.ClassLiability,
				Memo:           "retire prior loan",
			},
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Credit:         oldBalance,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           "retire prior loan",
			},
		)
	}

	penalty := rounding.Apply(in.PrepaymentPenalty)
	if penalty.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        AccountPrepayPenaltyExp,
				Debit:          penalty,
				Classification: ledger.ClassExpense,
				Memo:           "prepayment penalty",
			},
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Credit:         penalty,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           "prepayment penalty",
			},
		)
	}

	ev.Deltas = append(ev.Deltas, closingCostDeltas(in.ClosingCosts, policy, rounding)...)
	return ev
}
