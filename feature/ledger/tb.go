package ledger

import (
	"fmt"

	"ledger-audit/core/tabular"

	"github.com/shopspring/decimal"
)

// DefaultTotalLabel is the sentinel identifying the grand-total row of a
// trial balance.
const DefaultTotalLabel = "합계"

// TBOptions tunes trial balance loading.
type TBOptions struct {
	// TotalLabel overrides the grand-total sentinel. Empty means
	// DefaultTotalLabel.
	TotalLabel string
}

// UnparseableTotalRowError reports a grand-total row that was located but
// whose amount cells cannot be coerced.
type UnparseableTotalRowError struct {
	Table  string
	Column string
	Value  string
}

func (e *UnparseableTotalRowError) Error() string {
	return fmt.Sprintf("trial balance %q: grand-total cell in column %q is not a number: %q", e.Table, e.Column, e.Value)
}

var (
	tbCodeAliases = []string{"계정코드", "계정과목코드", "ACCT_CODE", "ACCT_CD", "계정"}
	tbNameAliases = []string{"계정과목", "계정과목명", "계정명", "ACCT_NAME"}
	// Fallback alias pairs for single-group layouts the pattern matrix
	// cannot classify (a bare "차변"/"대변" pair).
	tbDebitAliases  = []string{"차변잔액", "차변 잔액", "차변", "DR_BAL", "차변합계"}
	tbCreditAliases = []string{"대변잔액", "대변 잔액", "대변", "CR_BAL", "대변합계"}
)

// LoadTB types a raw trial balance table. Balance columns resolve through
// the debit/credit × balance/total pattern matrix first, falling back to
// plain aliases for single-group layouts. The row whose label cell equals
// the sentinel becomes the TotalRow and is excluded from the account rows.
func LoadTB(t *tabular.Table, opts TBOptions) (*TrialBalance, error) {
	label := opts.TotalLabel
	if label == "" {
		label = DefaultTotalLabel
	}

	codeCol, hasCode := tabular.FindColumn(t.Headers, tbCodeAliases, tabular.NormalizeStrict)
	nameCol, hasName := tabular.FindColumn(t.Headers, tbNameAliases, tabular.NormalizeStrict)
	if !hasCode && !hasName {
		return nil, &tabular.MissingColumnsError{Table: t.Name, Missing: []string{FieldAccountCode}, Headers: t.Headers}
	}

	cols, err := resolveTBAmounts(t)
	if err != nil {
		return nil, err
	}

	// The label column carries both account names and the grand-total
	// sentinel; it is the name column when one exists.
	labelCol := codeCol
	if hasName {
		labelCol = nameCol
	}

	tb := &TrialBalance{Name: t.Name, Rows: make([]BalanceRow, 0, t.Len()), TotalLabel: label}
	for i := 0; i < t.Len(); i++ {
		if t.Cell(i, labelCol) == label {
			if tb.Total != nil {
				continue // first sentinel row wins
			}
			total, err := parseTotalRow(t, i, cols)
			if err != nil {
				return nil, err
			}
			tb.Total = total
			continue
		}

		row := BalanceRow{
			Debit:  ParseAmount(t.Cell(i, cols.BalanceDebit)),
			Credit: ParseAmount(t.Cell(i, cols.BalanceCredit)),
		}
		if hasName {
			row.AccountName = t.Cell(i, nameCol)
		}
		if hasCode {
			row.AccountCode = t.Cell(i, codeCol)
		} else {
			row.AccountCode = row.AccountName
		}
		if row.AccountCode == "" && row.AccountName == "" {
			continue // padding row
		}
		tb.Rows = append(tb.Rows, row)
	}
	return tb, nil
}

// resolveTBAmounts resolves the amount columns of a trial balance: pattern
// matrix first, plain aliases as fallback. The returned error names the
// table and every unresolved side at once.
func resolveTBAmounts(t *tabular.Table) (tabular.BalanceColumns, error) {
	cols, err := tabular.ResolveBalanceColumns(t)
	if err == nil {
		return cols, nil
	}

	cols = tabular.BalanceColumns{BalanceDebit: -1, BalanceCredit: -1, TotalDebit: -1, TotalCredit: -1}
	var missing []string
	if i, ok := tabular.FindColumn(t.Headers, tbDebitAliases, tabular.NormalizeStrict); ok {
		cols.BalanceDebit = i
	} else {
		missing = append(missing, "debit balance")
	}
	if i, ok := tabular.FindColumn(t.Headers, tbCreditAliases, tabular.NormalizeStrict); ok {
		cols.BalanceCredit = i
	} else {
		missing = append(missing, "credit balance")
	}
	if len(missing) > 0 {
		return cols, &tabular.MissingColumnsError{Table: t.Name, Missing: missing, Headers: t.Headers}
	}
	return cols, nil
}

// parseTotalRow strictly coerces the grand-total cells; a broken total row
// invalidates the grand-total cross-check and must not default to 0.
func parseTotalRow(t *tabular.Table, row int, cols tabular.BalanceColumns) (*TotalRow, error) {
	total := &TotalRow{HasTotals: cols.HasTotals()}

	parse := func(col int) (decimal.Decimal, error) {
		v, err := ParseAmountStrict(t.Cell(row, col))
		if err != nil {
			return decimal.Zero, &UnparseableTotalRowError{Table: t.Name, Column: t.Headers[col], Value: t.Cell(row, col)}
		}
		return v, nil
	}

	var err error
	if total.BalanceDebit, err = parse(cols.BalanceDebit); err != nil {
		return nil, err
	}
	if total.BalanceCredit, err = parse(cols.BalanceCredit); err != nil {
		return nil, err
	}
	if total.HasTotals {
		if total.TotalDebit, err = parse(cols.TotalDebit); err != nil {
			return nil, err
		}
		if total.TotalCredit, err = parse(cols.TotalCredit); err != nil {
			return nil, err
		}
	}
	return total, nil
}
