/*
schedule.go - Month-by-month amortization schedule builder

PURPOSE:
  Expands loan terms into a full monthly schedule. Supports an optional
  interest-only lead-in and loans whose amortization runs longer than their
  term (producing a balloon at maturity).

ROUNDING:
  Every intermediate figure is rounded under the supplied policy before
  being carried into the next month, so compounding happens on the balances
  a statement reader would actually see.

CLOSURE:
  The final month forces principal equal to the remaining balance and
  recomputes the payment as interest plus principal, eliminating rounding
  residue. A fully amortizing loan therefore ends at exactly zero; a partial
  amortization ends with the balloon payoff.
*/
package debt

import (
	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// LoanTerms describes a loan's rate and shape.
type LoanTerms struct {
	AnnualRate         float64 // e.g. 0.065 for 6.5%
	TermMonths         int     // months until maturity
	AmortizationMonths int     // schedule length the payment is computed on
	IOMonths           int     // interest-only lead-in, 0 for none
}

// MonthlyRate is the periodic rate the schedule compounds at.
func (t LoanTerms) MonthlyRate() float64 { return t.AnnualRate / 12 }

// ScheduleEntry is one month of an amortization table. Months are numbered
// from 1. Ending balance of month m equals beginning balance of month m+1.
type ScheduleEntry struct {
	Month            int
	BeginningBalance decimal.Decimal
	Interest         decimal.Decimal
	Principal        decimal.Decimal
	Payment          decimal.Decimal
	EndingBalance    decimal.Decimal
	IsIO             bool
}

// BuildSchedule expands the terms into TermMonths entries.
//
// The level payment is computed once, on the original amortization length
// and original loan amount, never on the remaining term. When
// AmortizationMonths exceeds TermMonths the schedule ends in a balloon.
func BuildSchedule(loanAmount decimal.Decimal, terms LoanTerms, rounding ledger.RoundingPolicy) []ScheduleEntry {
	if terms.TermMonths <= 0 {
		return nil
	}

	rate := terms.MonthlyRate()
	levelPayment := rounding.Apply(Pmt(loanAmount, rate, terms.AmortizationMonths))

	schedule := make([]ScheduleEntry, 0, terms.TermMonths)
	balance := rounding.Apply(loanAmount)

	for month := 0; month < terms.TermMonths; month++ {
		entry := ScheduleEntry{
			Month:            month + 1,
			BeginningBalance: balance,
			Interest:         rounding.Apply(IOPayment(balance, rate)),
		}

		switch {
		case month == terms.TermMonths-1:
			// Maturity: pay the balance off whole, balloon or not.
			entry.Principal = balance
			entry.Payment = entry.Interest.Add(entry.Principal)
			entry.IsIO = month < terms.IOMonths
		case month < terms.IOMonths:
			entry.Principal = decimal.Zero
			entry.Payment = entry.Interest
			entry.IsIO = true
		default:
			entry.Payment = levelPayment
			entry.Principal = rounding.Apply(entry.Payment.Sub(entry.Interest))
		}

		balance = rounding.Apply(balance.Sub(entry.Principal))
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		entry.EndingBalance = balance
		schedule = append(schedule, entry)
	}

	return schedule
}
