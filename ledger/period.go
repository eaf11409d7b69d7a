package ledger

import (
	"fmt"
	"sort"
	"time"
)

// =============================================================================
// PERIOD - The monthly bucket statements are prepared for
// =============================================================================

// Period is a calendar month, the grain at which entries are stamped and
// statements derived. The zero value is not a valid period.
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf truncates a date to its month.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses "YYYY-MM".
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return PeriodOf(t), nil
}

// String renders the period as "YYYY-MM".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) index() int { return p.Year*12 + int(p.Month) - 1 }

// Before reports whether p is strictly earlier than o.
func (p Period) Before(o Period) bool { return p.index() < o.index() }

// AfterOrEqual reports whether p is o or later.
func (p Period) AfterOrEqual(o Period) bool { return p.index() >= o.index() }

// Next returns the following month.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// DistinctPeriods returns the sorted set of periods appearing in entries.
func DistinctPeriods(entries []PostedEntry) []Period {
	seen := make(map[Period]bool)
	var periods []Period
	for _, e := range entries {
		if !seen[e.Period] {
			seen[e.Period] = true
			periods = append(periods, e.Period)
		}
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })
	return periods
}
