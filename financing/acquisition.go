/*
Package financing translates financing, refinancing, and equity funding
events into balanced journal deltas for the posting engine.

Each builder emits a ledger.StatementEvent whose debits and credits are
equal by construction. The posting engine still verifies the balance; the
builders never rely on being trusted. Every cash movement gets its own CASH
leg carrying a cash-flow bucket, which is what lets the cash flow statement
be derived from the CASH account alone.

Event IDs are ULIDs, sortable by mint time.
*/
package financing

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// Event types stamped on emitted events.
const (
	EventAcquisition = "acquisition_financing"
	EventRefinance   = "refinance"
	EventFunding     = "capital_funding"
)

func newEventID() string { return ulid.Make().String() }

// AcquisitionInput describes a levered property purchase. Equity is derived
// as purchase price plus closing costs minus loan proceeds, so the event
// balances by construction.
type AcquisitionInput struct {
	EntityID      string
	Date          time.Time
	PurchasePrice decimal.Decimal
	LoanAmount    decimal.Decimal
	ClosingCosts  decimal.Decimal
}

// EquityRequired is the contribution the sponsor must fund at close.
func (in AcquisitionInput) EquityRequired() decimal.Decimal {
	return in.PurchasePrice.Add(in.ClosingCosts).Sub(in.LoanAmount)
}

// BuildAcquisition emits the closing-day event: equity in, loan drawn,
// property purchased, closing costs settled per policy.
func BuildAcquisition(in AcquisitionInput, policy AccountingPolicy, rounding ledger.RoundingPolicy) ledger.StatementEvent {
	ev := ledger.StatementEvent{
		EventID:   newEventID(),
		EventType: EventAcquisition,
		Date:      in.Date,
		EntityID:  in.EntityID,
	}

	equity := rounding.Apply(in.EquityRequired())
	if equity.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Debit:          equity,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           "equity contribution at close",
			},
			ledger.JournalDelta{
				Account:        AccountEquityContrib,
				Credit:         equity,
				Classification: ledger.ClassEquity,
				Memo:           "equity contribution at close",
			},
		)
	}

	loan := rounding.Apply(in.LoanAmount)
	if loan.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Debit:          loan,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketFinancing,
				Memo:           "acquisition loan proceeds",
			},
			ledger.JournalDelta{
				Account:        AccountLoanPayable,
				Credit:         loan,
				Classification: ledger.ClassLiability,
				Memo:           "acquisition loan proceeds",
			},
		)
	}

	price := rounding.Apply(in.PurchasePrice)
	if price.IsPositive() {
		ev.Deltas = append(ev.Deltas,
			ledger.JournalDelta{
				Account:        AccountProperty,
				Debit:          price,
				Classification: ledger.ClassAsset,
				Memo:           "property acquired",
			},
			ledger.JournalDelta{
				Account:        ledger.AccountCash,
				Credit:         price,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketInvesting,
				Memo:           "property acquired",
			},
		)
	}

	ev.Deltas = append(ev.Deltas, closingCostDeltas(in.ClosingCosts, policy, rounding)...)
	return ev
}

// closingCostDeltas routes issuance costs per policy: a deferred asset with
// a financing cash outflow, or an immediate expense with an operating one.
func closingCostDeltas(costs decimal.Decimal, policy AccountingPolicy, rounding ledger.RoundingPolicy) []ledger.JournalDelta {
	amount := rounding.Apply(costs)
	if !amount.IsPositive() {
		return nil
	}

	if policy.DebtIssuanceCosts == CostsExpensed {
		return []ledger.JournalDelta{
			{
				Account:        AccountClosingCostExp,
				Debit:          amount,
				Classification: ledger.ClassExpense,
				Memo:           "closing costs expensed",
			},
			{
				Account:        ledger.AccountCash,
				Credit:         amount,
				Classification: ledger.ClassAsset,
				CashFlowBucket: ledger.BucketOperating,
				Memo:           "closing costs expensed",
			},
		}
	}

	return []ledger.JournalDelta{
		{
			Account:        AccountDeferredFinCosts,
			Debit:          amount,
			Classification: ledger.ClassDeferred,
			Memo:           "closing costs capitalized",
		},
		{
			Account:        ledger.AccountCash,
			Credit:         amount,
			Classification: ledger.ClassAsset,
			CashFlowBucket: ledger.BucketFinancing,
			Memo:           "closing costs capitalized",
		},
	}
}
