package rollforward

import (
	"fmt"

	"ledger-audit/feature/ledger"

	"github.com/shopspring/decimal"
)

// TotalRowNotFoundError reports a trial balance with no row matching the
// configured grand-total sentinel, which makes the cross-check impossible.
type TotalRowNotFoundError struct {
	Table string
	Label string
}

func (e *TotalRowNotFoundError) Error() string {
	return fmt.Sprintf("trial balance %q: no row labelled %q found for the grand-total cross-check", e.Table, e.Label)
}

// CrossCheck is the ledger-level totals comparison: a coarse sanity gate
// that should pass before per-account variances are trusted.
type CrossCheck struct {
	// GLDebit and GLCredit are the ledger grand totals.
	GLDebit  decimal.Decimal `json:"gl_debit"`
	GLCredit decimal.Decimal `json:"gl_credit"`

	// TBDebit and TBCredit are the trial balance's declared totals, read
	// from its grand-total row.
	TBDebit  decimal.Decimal `json:"tb_debit"`
	TBCredit decimal.Decimal `json:"tb_credit"`

	// The four pairwise signed deltas. A failing pair is identifiable
	// from whichever delta exceeds the tolerance.
	DeltaGL     decimal.Decimal `json:"delta_gl"`     // GLDebit - GLCredit
	DeltaTB     decimal.Decimal `json:"delta_tb"`     // TBDebit - TBCredit
	DeltaDebit  decimal.Decimal `json:"delta_debit"`  // GLDebit - TBDebit
	DeltaCredit decimal.Decimal `json:"delta_credit"` // GLCredit - TBCredit

	// Pass is true when every delta is within the tolerance.
	Pass bool `json:"pass"`
}

// CrossCheckTotals compares the ledger's grand totals against the trial
// balance's declared totals. Two-group layouts compare against the turnover
// ("합계") column pair; single-group layouts only carry balance columns, so
// their grand-total row stands in for the declared totals.
func CrossCheckTotals(gl *ledger.GL, tb *ledger.TrialBalance, tolerance decimal.Decimal) (*CrossCheck, error) {
	if tb.Total == nil {
		return nil, &TotalRowNotFoundError{Table: tb.Name, Label: tb.TotalLabel}
	}

	check := &CrossCheck{}
	check.GLDebit, check.GLCredit = SumGL(gl)
	if tb.Total.HasTotals {
		check.TBDebit, check.TBCredit = tb.Total.TotalDebit, tb.Total.TotalCredit
	} else {
		check.TBDebit, check.TBCredit = tb.Total.BalanceDebit, tb.Total.BalanceCredit
	}

	check.DeltaGL = check.GLDebit.Sub(check.GLCredit)
	check.DeltaTB = check.TBDebit.Sub(check.TBCredit)
	check.DeltaDebit = check.GLDebit.Sub(check.TBDebit)
	check.DeltaCredit = check.GLCredit.Sub(check.TBCredit)

	check.Pass = true
	for _, delta := range []decimal.Decimal{check.DeltaGL, check.DeltaTB, check.DeltaDebit, check.DeltaCredit} {
		if delta.Abs().Cmp(tolerance) > 0 {
			check.Pass = false
			break
		}
	}
	return check, nil
}
