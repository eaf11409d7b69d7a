/*
accounts.go - Immutable chart-of-accounts registry

PURPOSE:
  Maps account codes to their normal balance side and statement
  classification. Built once at startup from a static chart and read-only
  afterwards; every other part of the engine references accounts by code,
  never by shared object identity.

INVARIANTS:
  - No duplicate codes
  - No re-registration after construction
  - Lookup is the only runtime operation

SEE ALSO:
  - factory/chart.go: Builds a Registry from a JSON chart definition
*/
package ledger

import (
	"fmt"
	"sort"
)

// AccountDef describes one account in the chart.
type AccountDef struct {
	Code           string
	Name           string
	NormalSide     NormalSide
	Classification Classification
}

// Registry is the read-only chart of accounts.
type Registry struct {
	byCode map[string]AccountDef
	codes  []string
}

// NewRegistry builds a registry from a chart. The chart must be non-empty,
// free of duplicate codes, and every definition must carry a valid side and
// classification.
func NewRegistry(defs []AccountDef) (*Registry, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyChart
	}

	byCode := make(map[string]AccountDef, len(defs))
	codes := make([]string, 0, len(defs))
	for _, def := range defs {
		if _, exists := byCode[def.Code]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAccount, def.Code)
		}
		switch def.NormalSide {
		case SideDebit, SideCredit:
		default:
			return nil, fmt.Errorf("%w: %q on account %q", ErrInvalidSide, def.NormalSide, def.Code)
		}
		switch def.Classification {
		case ClassAsset, ClassLiability, ClassEquity, ClassDeferred, ClassRevenue, ClassExpense:
		default:
			return nil, fmt.Errorf("%w: %q on account %q", ErrInvalidClassification, def.Classification, def.Code)
		}
		byCode[def.Code] = def
		codes = append(codes, def.Code)
	}
	sort.Strings(codes)

	return &Registry{byCode: byCode, codes: codes}, nil
}

// Lookup returns the definition for a code.
func (r *Registry) Lookup(code string) (AccountDef, bool) {
	def, ok := r.byCode[code]
	return def, ok
}

// Exists reports whether the code is defined.
func (r *Registry) Exists(code string) bool {
	_, ok := r.byCode[code]
	return ok
}

// Codes returns all defined codes in sorted order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// Len returns the number of accounts in the chart.
func (r *Registry) Len() int { return len(r.codes) }
