/*
Package ledger provides the core double-entry accounting engine.

PURPOSE:
  This package contains the domain-agnostic types and algorithms for turning
  structured business events into posted ledger entries and deriving period
  financial statements from them. Whether the events come from an acquisition
  financing, a refinance, or an equity funding tranche, the same engine posts
  them, aggregates them, and ties them out.

KEY CONCEPTS IN THIS FILE (types.go):
  - JournalDelta: One leg of a prospective posting (debit or credit)
  - StatementEvent: A business event carrying a balanced set of deltas
  - PostedEntry: An immutable ledger line stamped with its period
  - TrialBalanceEntry: Per-account totals for a period

DESIGN PRINCIPLES:
  1. Immutability: Entries are never modified after posting
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Determinism: Identical inputs always produce identical outputs
  4. Explicit rounding: Every computation receives a RoundingPolicy;
     there is no implicit global precision

SEE ALSO:
  - accounts.go: Chart-of-accounts registry
  - posting.go:  Event validation and posting
  - statements.go: Statement derivation
*/
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CLASSIFICATION - Where an account lands on the statements
// =============================================================================

// NormalSide is the side on which an account's balance normally sits.
type NormalSide string

const (
	SideDebit  NormalSide = "DEBIT"
	SideCredit NormalSide = "CREDIT"
)

// Classification places an account on a financial statement.
type Classification string

const (
	ClassAsset     Classification = "BS_ASSET"
	ClassLiability Classification = "BS_LIABILITY"
	ClassEquity    Classification = "BS_EQUITY"
	ClassDeferred  Classification = "BS_DEFERRED"
	ClassRevenue   Classification = "IS_REVENUE"
	ClassExpense   Classification = "IS_EXPENSE"
)

// IsBalanceSheet reports whether the classification accumulates from
// inception (balance-sheet accounts) rather than resetting each period.
func (c Classification) IsBalanceSheet() bool {
	switch c {
	case ClassAsset, ClassLiability, ClassEquity, ClassDeferred:
		return true
	}
	return false
}

// IsIncomeStatement reports whether the classification is period-scoped.
func (c Classification) IsIncomeStatement() bool {
	return c == ClassRevenue || c == ClassExpense
}

// CashFlowBucket assigns a cash-affecting leg to a section of the cash flow
// statement. The zero value means the leg does not appear on the cash flow
// statement at all.
type CashFlowBucket string

const (
	BucketNone      CashFlowBucket = ""
	BucketOperating CashFlowBucket = "OPERATING"
	BucketInvesting CashFlowBucket = "INVESTING"
	BucketFinancing CashFlowBucket = "FINANCING"
)

// =============================================================================
// WELL-KNOWN ACCOUNTS
// =============================================================================

const (
	// AccountCash is the account every cash-affecting event must touch.
	// The cash flow statement is derived exclusively from legs on this
	// account; the CF_TIEOUT reconciliation check enforces the assumption.
	AccountCash = "CASH"

	// AccountRetainedEarnings is synthetic: the balance-sheet extractor
	// injects it from cumulative net income. Nothing posts to it directly.
	AccountRetainedEarnings = "RETAINED_EARNINGS"
)

// =============================================================================
// JOURNAL DELTA - One leg of a prospective posting
// =============================================================================

// JournalDelta is one leg of a business event's posting. By convention
// exactly one of Debit/Credit is non-zero, though both may be present for
// netting; the posting engine sums both sides independently.
type JournalDelta struct {
	Account        string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Classification Classification
	CashFlowBucket CashFlowBucket
	Memo           string
}

// =============================================================================
// STATEMENT EVENT - A balanced business event awaiting posting
// =============================================================================

// StatementEvent carries the journal deltas produced by an upstream
// calculator (financing, refinance, funding). Events are immutable once
// created and consumed exactly once by the posting engine. The engine only
// accepts events whose deltas balance within tolerance.
type StatementEvent struct {
	EventID   string
	EventType string
	Date      time.Time
	EntityID  string
	Deltas    []JournalDelta
}

// =============================================================================
// POSTED ENTRY - An immutable ledger line
// =============================================================================

// PostedEntry is one ledger line, derived 1:1 from a JournalDelta of an
// accepted event. Entries are append-only; corrections happen upstream by
// issuing new events, never by editing history.
type PostedEntry struct {
	EventID        string
	Period         Period
	Account        string
	Debit          decimal.Decimal
	Credit         decimal.Decimal
	Classification Classification
	CashFlowBucket CashFlowBucket
	Memo           string
}

// =============================================================================
// TRIAL BALANCE ENTRY - Per-account totals for a period
// =============================================================================

// TrialBalanceEntry holds the aggregated debit/credit totals for one account.
// Balance is signed according to the account's normal side: debit-normal
// accounts carry debit minus credit, credit-normal the reverse.
type TrialBalanceEntry struct {
	Account     string
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Balance     decimal.Decimal
}
