/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's value objects from the external API contract.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients

MONEY OVER THE WIRE:
  Monetary fields are decimal.Decimal, which marshals to exact decimal
  strings and unmarshals from either strings or JSON numbers. Rates and
  ratios are plain float64.

VALIDATION:
  Handlers validate; DTOs are pure data carriers. The engine's own
  arithmetic invariants (balance, convergence) are re-checked downstream
  regardless of what arrives here.

SEE ALSO:
  - handlers.go: Uses these types
  - ledger/applier.go: ApplierOutput this layer serializes
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/debt"
	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
	"github.com/ricardocidale/LB-Hospitality-sub008/returns"
)

// =============================================================================
// SHARED PIECES
// =============================================================================

// RoundingDTO mirrors ledger.RoundingPolicy.
type RoundingDTO struct {
	Precision       int32 `json:"precision"`
	BankersRounding bool  `json:"bankers_rounding"`
}

func (r *RoundingDTO) toPolicy() ledger.RoundingPolicy {
	if r == nil {
		return ledger.DefaultRounding
	}
	return ledger.RoundingPolicy{Precision: r.Precision, Bankers: r.BankersRounding}
}

// TermsDTO mirrors debt.LoanTerms.
type TermsDTO struct {
	AnnualRate         float64 `json:"annual_rate"`
	TermMonths         int     `json:"term_months"`
	AmortizationMonths int     `json:"amortization_months"`
	IOMonths           int     `json:"io_months,omitempty"`
}

func (t TermsDTO) toTerms() debt.LoanTerms {
	return debt.LoanTerms{
		AnnualRate:         t.AnnualRate,
		TermMonths:         t.TermMonths,
		AmortizationMonths: t.AmortizationMonths,
		IOMonths:           t.IOMonths,
	}
}

// =============================================================================
// DEBT ENDPOINTS
// =============================================================================

// ScheduleRequest asks for an amortization schedule.
type ScheduleRequest struct {
	LoanAmount decimal.Decimal `json:"loan_amount"`
	Terms      TermsDTO        `json:"terms"`
	Rounding   *RoundingDTO    `json:"rounding,omitempty"`
}

// ScheduleEntryDTO is one row of the amortization table.
type ScheduleEntryDTO struct {
	Month            int             `json:"month"`
	BeginningBalance decimal.Decimal `json:"beginning_balance"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	Payment          decimal.Decimal `json:"payment"`
	EndingBalance    decimal.Decimal `json:"ending_balance"`
	IsIO             bool            `json:"is_io"`
}

func toScheduleDTOs(entries []debt.ScheduleEntry) []ScheduleEntryDTO {
	out := make([]ScheduleEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = ScheduleEntryDTO{
			Month:            e.Month,
			BeginningBalance: e.BeginningBalance,
			Interest:         e.Interest,
			Principal:        e.Principal,
			Payment:          e.Payment,
			EndingBalance:    e.EndingBalance,
			IsIO:             e.IsIO,
		}
	}
	return out
}

// SizingRequest asks for a loan sizing.
type SizingRequest struct {
	Valuation  ValuationDTO    `json:"valuation"`
	LTVMax     float64         `json:"ltv_max"`
	Terms      TermsDTO        `json:"terms"`
	DSCRMin    float64         `json:"dscr_min,omitempty"`
	NOIForDSCR decimal.Decimal `json:"noi_for_dscr,omitempty"`
	Rounding   *RoundingDTO    `json:"rounding,omitempty"`
}

// ValuationDTO mirrors debt.Valuation.
type ValuationDTO struct {
	Kind          string          `json:"kind"` // direct | noi_cap
	Value         decimal.Decimal `json:"value,omitempty"`
	StabilizedNOI decimal.Decimal `json:"stabilized_noi,omitempty"`
	CapRate       float64         `json:"cap_rate,omitempty"`
}

func (v ValuationDTO) toValuation() debt.Valuation {
	return debt.Valuation{
		Kind:          debt.ValuationKind(v.Kind),
		Value:         v.Value,
		StabilizedNOI: v.StabilizedNOI,
		CapRate:       v.CapRate,
	}
}

// SizingDTO is the sizing response.
type SizingDTO struct {
	PropertyValue    decimal.Decimal `json:"property_value"`
	MaxLoanLTV       decimal.Decimal `json:"max_loan_ltv"`
	MaxLoanDSCR      decimal.Decimal `json:"max_loan_dscr,omitempty"`
	DSCREvaluated    bool            `json:"dscr_evaluated"`
	LoanAmount       decimal.Decimal `json:"loan_amount"`
	LTVBinding       bool            `json:"ltv_binding"`
	DSCRBinding      bool            `json:"dscr_binding"`
	DebtServiceBasis string          `json:"dscr_debt_service_basis"`
}

func toSizingDTO(r debt.SizingResult) SizingDTO {
	return SizingDTO{
		PropertyValue:    r.PropertyValue,
		MaxLoanLTV:       r.MaxLoanLTV,
		MaxLoanDSCR:      r.MaxLoanDSCR,
		DSCREvaluated:    r.DSCREvaluated,
		LoanAmount:       r.LoanAmount,
		LTVBinding:       r.LTVBinding,
		DSCRBinding:      r.DSCRBinding,
		DebtServiceBasis: r.DebtServiceBasis,
	}
}

// PayoffRequest asks for a loan payoff quote.
type PayoffRequest struct {
	Balance         decimal.Decimal `json:"balance"`
	Penalty         PenaltyDTO      `json:"penalty"`
	AccruedInterest decimal.Decimal `json:"accrued_interest,omitempty"`
	Rounding        *RoundingDTO    `json:"rounding,omitempty"`
}

// PenaltyDTO mirrors debt.PrepaymentPenalty.
type PenaltyDTO struct {
	Type  string          `json:"type"` // none | pct_of_balance | fixed
	Value decimal.Decimal `json:"value,omitempty"`
}

// PayoffDTO is the payoff response.
type PayoffDTO struct {
	Balance           decimal.Decimal `json:"balance"`
	PrepaymentPenalty decimal.Decimal `json:"prepayment_penalty"`
	AccruedInterest   decimal.Decimal `json:"accrued_interest"`
	Total             decimal.Decimal `json:"total"`
}

// =============================================================================
// RETURNS ENDPOINT
// =============================================================================

// MetricsRequest asks for return metrics on an equity cash-flow series.
type MetricsRequest struct {
	CashFlows      []decimal.Decimal `json:"cash_flows"`
	PeriodsPerYear int               `json:"periods_per_year"`
	Rounding       *RoundingDTO      `json:"rounding,omitempty"`
}

// MetricsDTO is the metrics response. IRR rates are null when the solver
// did not converge; callers must treat that as unknown, not zero.
type MetricsDTO struct {
	TotalInvested      decimal.Decimal `json:"total_invested"`
	TotalDistributions decimal.Decimal `json:"total_distributions"`
	NetProfit          decimal.Decimal `json:"net_profit"`
	MOIC               decimal.Decimal `json:"moic"`
	DPI                decimal.Decimal `json:"dpi"`
	CashOnCash         decimal.Decimal `json:"cash_on_cash"`
	IRRPeriodic        *float64        `json:"irr_periodic"`
	IRRAnnualized      *float64        `json:"irr_annualized"`
	Converged          bool            `json:"converged"`
	Iterations         int             `json:"iterations"`
}

func toMetricsDTO(m returns.ReturnMetrics) MetricsDTO {
	dto := MetricsDTO{
		TotalInvested:      m.TotalInvested,
		TotalDistributions: m.TotalDistributions,
		NetProfit:          m.NetProfit,
		MOIC:               m.MOIC,
		DPI:                m.DPI,
		CashOnCash:         m.CashOnCash,
		Converged:          m.IRR.Converged,
		Iterations:         m.IRR.Iterations,
	}
	if m.IRR.Converged {
		periodic, annualized := m.IRR.Periodic, m.IRR.Annualized
		dto.IRRPeriodic = &periodic
		dto.IRRAnnualized = &annualized
	}
	return dto
}

// =============================================================================
// STATEMENT RUN ENDPOINTS
// =============================================================================

// ApplyRequest submits events for a full statement run.
type ApplyRequest struct {
	Events   []EventDTO   `json:"events"`
	Rounding *RoundingDTO `json:"rounding,omitempty"`
	Persist  bool         `json:"persist,omitempty"`
	Label    string       `json:"label,omitempty"`
}

// EventDTO mirrors ledger.StatementEvent. Dates are YYYY-MM-DD.
type EventDTO struct {
	EventID   string     `json:"event_id"`
	EventType string     `json:"event_type"`
	Date      string     `json:"date"`
	EntityID  string     `json:"entity_id"`
	Deltas    []DeltaDTO `json:"journal_deltas"`
}

// DeltaDTO mirrors ledger.JournalDelta.
type DeltaDTO struct {
	Account        string          `json:"account"`
	Debit          decimal.Decimal `json:"debit,omitempty"`
	Credit         decimal.Decimal `json:"credit,omitempty"`
	Classification string          `json:"classification"`
	CashFlowBucket string          `json:"cash_flow_bucket,omitempty"`
	Memo           string          `json:"memo,omitempty"`
}

func (e EventDTO) toEvent() (ledger.StatementEvent, error) {
	date, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return ledger.StatementEvent{}, err
	}
	ev := ledger.StatementEvent{
		EventID:   e.EventID,
		EventType: e.EventType,
		Date:      date,
		EntityID:  e.EntityID,
	}
	for _, d := range e.Deltas {
		ev.Deltas = append(ev.Deltas, ledger.JournalDelta{
			Account:        d.Account,
			Debit:          d.Debit,
			Credit:         d.Credit,
			Classification: ledger.Classification(d.Classification),
			CashFlowBucket: ledger.CashFlowBucket(d.CashFlowBucket),
			Memo:           d.Memo,
		})
	}
	return ev, nil
}

// EntryDTO mirrors ledger.PostedEntry.
type EntryDTO struct {
	EventID        string          `json:"event_id"`
	Period         string          `json:"period"`
	Account        string          `json:"account"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Classification string          `json:"classification"`
	CashFlowBucket string          `json:"cash_flow_bucket,omitempty"`
	Memo           string          `json:"memo,omitempty"`
}

// LineDTO is one statement line.
type LineDTO struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}

// TrialBalanceDTO is one trial-balance row.
type TrialBalanceDTO struct {
	Account     string          `json:"account"`
	DebitTotal  decimal.Decimal `json:"debit_total"`
	CreditTotal decimal.Decimal `json:"credit_total"`
	Balance     decimal.Decimal `json:"balance"`
}

// IncomeStatementDTO mirrors ledger.IncomeStatement.
type IncomeStatementDTO struct {
	Revenue       []LineDTO       `json:"revenue"`
	Expenses      []LineDTO       `json:"expenses"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetIncome     decimal.Decimal `json:"net_income"`
}

// BalanceSheetDTO mirrors ledger.BalanceSheet.
type BalanceSheetDTO struct {
	Assets           []LineDTO       `json:"assets"`
	Liabilities      []LineDTO       `json:"liabilities"`
	Equity           []LineDTO       `json:"equity"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	Balanced         bool            `json:"balanced"`
}

// CashFlowDTO mirrors ledger.CashFlowStatement.
type CashFlowDTO struct {
	Operating     decimal.Decimal `json:"operating"`
	Investing     decimal.Decimal `json:"investing"`
	Financing     decimal.Decimal `json:"financing"`
	NetCashChange decimal.Decimal `json:"net_cash_change"`
}

// PeriodDTO bundles one month's derived views.
type PeriodDTO struct {
	Period          string             `json:"period"`
	TrialBalance    []TrialBalanceDTO  `json:"trial_balance"`
	IncomeStatement IncomeStatementDTO `json:"income_statement"`
	BalanceSheet    BalanceSheetDTO    `json:"balance_sheet"`
	CashFlow        CashFlowDTO        `json:"cash_flow"`
}

// CheckDTO mirrors ledger.ReconciliationCheck.
type CheckDTO struct {
	Name     string          `json:"check"`
	Period   string          `json:"period"`
	Passed   bool            `json:"passed"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"`
	GAAPRef  string          `json:"gaap_ref"`
}

// ApplyResponseDTO is the full statement-run response.
type ApplyResponseDTO struct {
	RunID            string      `json:"run_id,omitempty"`
	Entries          []EntryDTO  `json:"posted_entries"`
	UnbalancedEvents []string    `json:"unbalanced_events"`
	HasPostingErrors bool        `json:"has_posting_errors"`
	Periods          []PeriodDTO `json:"periods"`
	Checks           []CheckDTO  `json:"reconciliation_checks"`
	AllPassed        bool        `json:"all_passed"`
}

func toLines(lines []ledger.StatementLine) []LineDTO {
	out := make([]LineDTO, len(lines))
	for i, l := range lines {
		out[i] = LineDTO{Account: l.Account, Amount: l.Amount}
	}
	return out
}

func toApplyResponse(out *ledger.ApplierOutput) ApplyResponseDTO {
	resp := ApplyResponseDTO{
		UnbalancedEvents: out.UnbalancedEvents,
		HasPostingErrors: out.HasPostingErrors,
		AllPassed:        out.Reconciliation.AllPassed,
	}
	if resp.UnbalancedEvents == nil {
		resp.UnbalancedEvents = []string{}
	}

	for _, e := range out.Entries {
		resp.Entries = append(resp.Entries, EntryDTO{
			EventID:        e.EventID,
			Period:         e.Period.String(),
			Account:        e.Account,
			Debit:          e.Debit,
			Credit:         e.Credit,
			Classification: string(e.Classification),
			CashFlowBucket: string(e.CashFlowBucket),
			Memo:           e.Memo,
		})
	}

	for _, ps := range out.Periods {
		pd := PeriodDTO{Period: ps.Period.String()}
		for _, tb := range ps.TrialBalance {
			pd.TrialBalance = append(pd.TrialBalance, TrialBalanceDTO{
				Account:     tb.Account,
				DebitTotal:  tb.DebitTotal,
				CreditTotal: tb.CreditTotal,
				Balance:     tb.Balance,
			})
		}
		pd.IncomeStatement = IncomeStatementDTO{
			Revenue:       toLines(ps.Income.Revenue),
			Expenses:      toLines(ps.Income.Expenses),
			TotalRevenue:  ps.Income.TotalRevenue,
			TotalExpenses: ps.Income.TotalExpenses,
			NetIncome:     ps.Income.NetIncome,
		}
		pd.BalanceSheet = BalanceSheetDTO{
			Assets:           toLines(ps.Balance.Assets),
			Liabilities:      toLines(ps.Balance.Liabilities),
			Equity:           toLines(ps.Balance.Equity),
			TotalAssets:      ps.Balance.TotalAssets,
			TotalLiabilities: ps.Balance.TotalLiabilities,
			TotalEquity:      ps.Balance.TotalEquity,
			Balanced:         ps.Balance.Balanced,
		}
		pd.CashFlow = CashFlowDTO{
			Operating:     ps.CashFlow.Operating,
			Investing:     ps.CashFlow.Investing,
			Financing:     ps.CashFlow.Financing,
			NetCashChange: ps.CashFlow.NetCashChange,
		}
		resp.Periods = append(resp.Periods, pd)
	}

	for _, c := range out.Reconciliation.Checks {
		resp.Checks = append(resp.Checks, CheckDTO{
			Name:     c.Name,
			Period:   c.Period.String(),
			Passed:   c.Passed,
			Expected: c.Expected,
			Actual:   c.Actual,
			Variance: c.Variance,
			GAAPRef:  c.GAAPRef,
		})
	}

	return resp
}

// =============================================================================
// RUNS + SCENARIOS
// =============================================================================

// RunSummaryDTO is one row of the run listing.
type RunSummaryDTO struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	CreatedAt        string `json:"created_at"`
	EntryCount       int    `json:"entry_count"`
	HasPostingErrors bool   `json:"has_posting_errors"`
	AllPassed        bool   `json:"all_passed"`
}

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest picks a scenario to run.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
	Persist    bool   `json:"persist,omitempty"`
}
