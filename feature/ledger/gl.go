package ledger

import (
	"errors"
	"fmt"

	"ledger-audit/core/tabular"

	"github.com/shopspring/decimal"
)

// Canonical general ledger field names.
const (
	FieldPostingDate = "posting date"
	FieldEntryDate   = "entry date"
	FieldDocumentNo  = "document number"
	FieldAccountCode = "account code"
	FieldAccountName = "account name"
	FieldDebit       = "debit amount"
	FieldCredit      = "credit amount"
	FieldDescription = "description"
	FieldPreparer    = "preparer"
)

// glSchema mirrors the header spellings seen across the supported ERP
// exports. The credit column is optional to admit SAP-style layouts where a
// single signed column carries both sides.
var glSchema = &tabular.Schema{
	Normalize: tabular.NormalizeLoose,
	Fields: []tabular.Field{
		{Name: FieldPostingDate, Aliases: []string{"전표일자", "회계일자", "Posting Date"}, Required: true},
		{Name: FieldEntryDate, Aliases: []string{"입력일자", "Entry Date", "Created on"}},
		{Name: FieldDocumentNo, Aliases: []string{"전표번호", "Document No."}, Required: true},
		{Name: FieldAccountCode, Aliases: []string{"계정코드", "계정과목코드", "G/L Account"}},
		{Name: FieldAccountName, Aliases: []string{"계정과목", "계정과목명", "G/L Account Name"}},
		{Name: FieldDebit, Aliases: []string{"차변금액", "차변", "Amount in local cur."}, Required: true},
		{Name: FieldCredit, Aliases: []string{"대변금액", "대변"}},
		{Name: FieldDescription, Aliases: []string{"적요", "Text", "Description"}},
		{Name: FieldPreparer, Aliases: []string{"입력사원", "작성자", "User Name", "Created By"}, Required: true},
	},
}

func glAliases(name string) []string {
	for _, f := range glSchema.Fields {
		if f.Name == name {
			return f.Aliases
		}
	}
	return nil
}

// LoadGL types a raw ledger table into a GL. Identifier cells stay text,
// amounts become decimals (comma-stripped, defaulting to 0), dates coerce
// with per-row failures becoming zero times. Loading fails only when
// required columns are missing or the mandatory posting-date column fails to
// parse on every row.
func LoadGL(t *tabular.Table) (*GL, error) {
	cols, err := glSchema.Resolve(t)
	if err != nil {
		var missing *tabular.MissingColumnsError
		if errors.As(err, &missing) {
			// The account identifier may come from either column; report
			// it alongside the other gaps when both are absent.
			if _, codeOK := tabular.FindColumn(t.Headers, glAliases(FieldAccountCode), tabular.NormalizeLoose); !codeOK {
				if _, nameOK := tabular.FindColumn(t.Headers, glAliases(FieldAccountName), tabular.NormalizeLoose); !nameOK {
					missing.Missing = append(missing.Missing, FieldAccountCode)
				}
			}
		}
		return nil, err
	}

	codeCol, hasCode := cols[FieldAccountCode]
	nameCol, hasName := cols[FieldAccountName]
	if !hasCode && !hasName {
		return nil, &tabular.MissingColumnsError{Table: t.Name, Missing: []string{FieldAccountCode}, Headers: t.Headers}
	}

	entryDateCol, hasEntryDate := cols[FieldEntryDate]
	descCol, hasDesc := cols[FieldDescription]
	creditCol, hasCredit := cols[FieldCredit]

	gl := &GL{
		Name:           t.Name,
		Entries:        make([]Entry, 0, t.Len()),
		HasEntryDate:   hasEntryDate,
		HasDescription: hasDesc,
		GroupedByName:  !hasCode,
	}

	for i := 0; i < t.Len(); i++ {
		e := Entry{
			DocumentNo: t.Cell(i, cols[FieldDocumentNo]),
			Preparer:   t.Cell(i, cols[FieldPreparer]),
			Debit:      ParseAmount(t.Cell(i, cols[FieldDebit])),
		}

		e.PostingDate = ParseDate(t.Cell(i, cols[FieldPostingDate]))
		if e.PostingDate.IsZero() {
			gl.BadPostingDates++
		}
		if hasEntryDate {
			e.EntryDate = ParseDate(t.Cell(i, entryDateCol))
		}
		if hasDesc {
			e.Description = t.Cell(i, descCol)
		}
		if hasCredit {
			e.Credit = ParseAmount(t.Cell(i, creditCol))
		} else if e.Debit.IsNegative() {
			// SAP-style signed single column: negatives are credits.
			e.Credit = e.Debit.Neg()
			e.Debit = decimal.Zero
		}

		if hasName {
			e.AccountName = t.Cell(i, nameCol)
		}
		if hasCode {
			e.AccountCode = t.Cell(i, codeCol)
		} else {
			e.AccountCode = e.AccountName
		}

		gl.Entries = append(gl.Entries, e)
	}

	if len(gl.Entries) > 0 && gl.BadPostingDates == len(gl.Entries) {
		return nil, fmt.Errorf("ledger %q: no value in the mandatory posting-date column could be parsed as a date", t.Name)
	}
	return gl, nil
}
