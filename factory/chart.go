/*
Package factory provides JSON to Go chart-of-accounts conversion.

PURPOSE:
  Converts JSON chart definitions into a ledger.Registry. This enables
  chart configuration without code changes - an analyst can adjust account
  names or add accounts in JSON, and the factory builds the immutable
  registry the engine runs on.

JSON SCHEMA:
  {
    "accounts": [
      {
        "code": "CASH",
        "name": "Cash and Equivalents",
        "normal_side": "DEBIT",
        "classification": "BS_ASSET"
      }
    ]
  }

KEY FEATURES:
  - Validates sides and classifications against the engine's enums
  - Rejects duplicate codes
  - Ships the default hospitality real-estate chart as a preset

USAGE:
  f := factory.NewChartFactory()
  reg, err := f.ParseChart(factory.DefaultChartJSON())

SEE ALSO:
  - ledger/accounts.go: Registry type and validation
  - financing/accounts.go: Account codes the builders post to
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ChartJSON is the JSON representation of a chart of accounts.
type ChartJSON struct {
	Accounts []AccountJSON `json:"accounts"`
}

// AccountJSON is one account definition.
type AccountJSON struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NormalSide     string `json:"normal_side"`
	Classification string `json:"classification"`
}

// =============================================================================
// CHART FACTORY
// =============================================================================

// ChartFactory converts JSON charts to ledger registries.
type ChartFactory struct{}

// NewChartFactory creates a new chart factory.
func NewChartFactory() *ChartFactory {
	return &ChartFactory{}
}

// ParseChart parses a JSON string into a Registry.
func (f *ChartFactory) ParseChart(jsonStr string) (*ledger.Registry, error) {
	var cj ChartJSON
	if err := json.Unmarshal([]byte(jsonStr), &cj); err != nil {
		return nil, fmt.Errorf("failed to parse chart JSON: %w", err)
	}
	return f.FromJSON(cj)
}

// FromJSON converts ChartJSON to a Registry. Side and classification
// validation happens inside ledger.NewRegistry.
func (f *ChartFactory) FromJSON(cj ChartJSON) (*ledger.Registry, error) {
	defs := make([]ledger.AccountDef, 0, len(cj.Accounts))
	for _, a := range cj.Accounts {
		defs = append(defs, ledger.AccountDef{
			Code:           a.Code,
			Name:           a.Name,
			NormalSide:     ledger.NormalSide(a.NormalSide),
			Classification: ledger.Classification(a.Classification),
		})
	}
	return ledger.NewRegistry(defs)
}

// =============================================================================
// DEFAULT CHART
// =============================================================================

// DefaultChartJSON returns the hospitality real-estate chart every scenario
// and the default server run on. Codes must stay in sync with
// financing/accounts.go.
func DefaultChartJSON() string {
	return `{
  "accounts": [
    {"code": "CASH", "name": "Cash and Equivalents", "normal_side": "DEBIT", "classification": "BS_ASSET"},
    {"code": "PROPERTY", "name": "Property, at Cost", "normal_side": "DEBIT", "classification": "BS_ASSET"},
    {"code": "DEFERRED_FINANCING_COSTS", "name": "Deferred Financing Costs", "normal_side": "DEBIT", "classification": "BS_DEFERRED"},
    {"code": "LOAN_PAYABLE", "name": "Loan Payable", "normal_side": "CREDIT", "classification": "BS_LIABILITY"},
    {"code": "EQUITY_CONTRIBUTIONS", "name": "Equity Contributions", "normal_side": "CREDIT", "classification": "BS_EQUITY"},
    {"code": "RETAINED_EARNINGS", "name": "Retained Earnings", "normal_side": "CREDIT", "classification": "BS_EQUITY"},
    {"code": "ROOM_REVENUE", "name": "Room Revenue", "normal_side": "CREDIT", "classification": "IS_REVENUE"},
    {"code": "OPERATING_EXPENSE", "name": "Operating Expenses", "normal_side": "DEBIT", "classification": "IS_EXPENSE"},
    {"code": "INTEREST_EXPENSE", "name": "Interest Expense", "normal_side": "DEBIT", "classification": "IS_EXPENSE"},
    {"code": "CLOSING_COST_EXPENSE", "name": "Closing Cost Expense", "normal_side": "DEBIT", "classification": "IS_EXPENSE"},
    {"code": "PREPAYMENT_PENALTY_EXPENSE", "name": "Prepayment Penalty Expense", "normal_side": "DEBIT", "classification": "IS_EXPENSE"}
  ]
}`
}

// DefaultRegistry builds the default chart, panicking on failure. The chart
// is a compile-time constant, so a failure is a programming error.
func DefaultRegistry() *ledger.Registry {
	reg, err := NewChartFactory().ParseChart(DefaultChartJSON())
	if err != nil {
		panic(fmt.Sprintf("default chart invalid: %v", err))
	}
	return reg
}
