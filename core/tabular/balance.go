package tabular

import (
	"fmt"
	"regexp"
)

// Trial balance exports frequently carry a two-tier header ("차 변" over
// "잔 액"/"합 계"), which flattens into headers with embedded whitespace.
// Four independent patterns classify each header on two axes: debit/credit
// side and balance/turnover-total group.
var (
	debitPattern   = regexp.MustCompile(`차\s*변|(?i)\bDR\b|(?i)DEBIT`)
	creditPattern  = regexp.MustCompile(`대\s*변|(?i)\bCR\b|(?i)CREDIT`)
	balancePattern = regexp.MustCompile(`잔\s*액|(?i)BAL`)
	totalPattern   = regexp.MustCompile(`합\s*계|(?i)TOT`)
)

// BalanceColumns holds the four logical amount columns of a trial balance.
// An index of -1 means the column was not present.
type BalanceColumns struct {
	BalanceDebit  int
	BalanceCredit int
	TotalDebit    int
	TotalCredit   int
}

// ResolveBalanceColumns classifies the headers into the 2×2 debit/credit ×
// balance/total matrix. The first header matching each cell wins. Returns an
// error naming the unmatched cells when the balance pair is incomplete; the
// total (turnover) pair is optional and stays -1 when absent.
func ResolveBalanceColumns(t *Table) (BalanceColumns, error) {
	cols := BalanceColumns{BalanceDebit: -1, BalanceCredit: -1, TotalDebit: -1, TotalCredit: -1}
	for i, h := range t.Headers {
		isDebit := debitPattern.MatchString(h)
		isCredit := creditPattern.MatchString(h)
		isBalance := balancePattern.MatchString(h)
		isTotal := totalPattern.MatchString(h)
		switch {
		case isDebit && isBalance && cols.BalanceDebit < 0:
			cols.BalanceDebit = i
		case isCredit && isBalance && cols.BalanceCredit < 0:
			cols.BalanceCredit = i
		case isDebit && isTotal && cols.TotalDebit < 0:
			cols.TotalDebit = i
		case isCredit && isTotal && cols.TotalCredit < 0:
			cols.TotalCredit = i
		}
	}
	if cols.BalanceDebit < 0 || cols.BalanceCredit < 0 {
		var missing []string
		if cols.BalanceDebit < 0 {
			missing = append(missing, "debit balance")
		}
		if cols.BalanceCredit < 0 {
			missing = append(missing, "credit balance")
		}
		return cols, &MissingColumnsError{Table: t.Name, Missing: missing, Headers: t.Headers}
	}
	return cols, nil
}

// HasTotals reports whether the turnover-total column pair resolved.
func (c BalanceColumns) HasTotals() bool {
	return c.TotalDebit >= 0 && c.TotalCredit >= 0
}

// String renders the resolved indices for diagnostics.
func (c BalanceColumns) String() string {
	return fmt.Sprintf("balance(dr=%d, cr=%d) total(dr=%d, cr=%d)",
		c.BalanceDebit, c.BalanceCredit, c.TotalDebit, c.TotalCredit)
}
