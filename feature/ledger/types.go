package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one posting line of the general ledger. Lines sharing a
// DocumentNo form one journal entry; nothing guarantees that such an entry
// balances, that is a detection target, not a precondition.
type Entry struct {
	// PostingDate is the accounting date of the line. Zero when the source
	// value failed to parse.
	PostingDate time.Time

	// EntryDate is the date the line was keyed in, used for backdating
	// detection. Zero when absent or unparseable.
	EntryDate time.Time

	// DocumentNo groups lines into one journal entry.
	DocumentNo string

	// AccountCode identifies the account. When the source had no code
	// column the account name stands in (see GL.GroupedByName).
	AccountCode string

	// AccountName is the display name of the account, may be empty.
	AccountName string

	// Debit and Credit are the posted amounts, 0 when absent or
	// unparseable.
	Debit  decimal.Decimal
	Credit decimal.Decimal

	// Description is the free-text narration, may be empty.
	Description string

	// Preparer is the user who recorded the entry.
	Preparer string
}

// GL is a fully loaded general ledger.
type GL struct {
	// Name labels the source for error messages.
	Name string

	// Entries holds every posting line in source order.
	Entries []Entry

	// HasEntryDate reports whether an entry-date column resolved; without
	// it the backdating rule degrades to an empty result.
	HasEntryDate bool

	// HasDescription reports whether a description column resolved;
	// without it the keyword rule degrades to an empty result.
	HasDescription bool

	// GroupedByName is true when no account-code column resolved and
	// account names serve as the grouping identifier.
	GroupedByName bool

	// BadPostingDates counts rows whose posting date failed to parse.
	// Those rows are silently excluded from date-dependent rules.
	BadPostingDates int
}

// BalanceRow is one account line of a trial balance. Debit and Credit are
// taken independently from the source; well-formed data carries a balance on
// at most one side, but that is not enforced here.
type BalanceRow struct {
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// Net returns the signed balance, debit minus credit.
func (r BalanceRow) Net() decimal.Decimal {
	return r.Debit.Sub(r.Credit)
}

// TotalRow holds the declared grand totals read from the sentinel-labelled
// row of a trial balance.
type TotalRow struct {
	// BalanceDebit and BalanceCredit are the grand totals of the balance
	// column pair.
	BalanceDebit  decimal.Decimal
	BalanceCredit decimal.Decimal

	// TotalDebit and TotalCredit are the grand totals of the turnover
	// ("합계") column pair, present only in two-group layouts.
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal

	// HasTotals reports whether the turnover pair was present.
	HasTotals bool
}

// TrialBalance is a period-end account snapshot.
type TrialBalance struct {
	// Name labels the source for error messages.
	Name string

	// Rows holds the account lines, excluding the grand-total row.
	Rows []BalanceRow

	// Total is the parsed grand-total row, nil when no row matched the
	// configured sentinel label.
	Total *TotalRow

	// TotalLabel is the sentinel the loader searched for, kept for
	// diagnostics when Total is nil.
	TotalLabel string
}
