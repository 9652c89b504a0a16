package report

import (
	"time"

	"github.com/google/uuid"

	"ledger-audit/feature/jet"
	"ledger-audit/feature/ledger"
	"ledger-audit/feature/rollforward"
)

// maxSheetName is the spreadsheet format's sheet name limit, in characters.
const maxSheetName = 31

// Section is one named block of findings destined for its own sheet.
type Section struct {
	Name    string
	Headers []string
	Rows    [][]interface{}
}

// Report collects the findings of one run in insertion order. Empty
// sections are dropped at the door so the export only carries sheets with
// something to show.
type Report struct {
	RunID     string
	CreatedAt time.Time

	sections []Section
}

// New allocates a report with a fresh run identifier.
func New() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

// Sections returns the collected non-empty sections in insertion order.
func (r *Report) Sections() []Section {
	return r.sections
}

// Empty reports whether nothing has been collected.
func (r *Report) Empty() bool {
	return len(r.sections) == 0
}

var entryHeaders = []string{
	"전표일자", "입력일자", "전표번호", "계정코드", "계정과목",
	"차변금액", "대변금액", "적요", "입력사원",
}

// AddEntries collects a named set of journal entries, typically one anomaly
// scenario's hits. An empty set is skipped.
func (r *Report) AddEntries(name string, entries []ledger.Entry) {
	if len(entries) == 0 {
		return
	}
	rows := make([][]interface{}, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []interface{}{
			dayOrBlank(e.PostingDate), dayOrBlank(e.EntryDate),
			e.DocumentNo, e.AccountCode, e.AccountName,
			e.Debit.InexactFloat64(), e.Credit.InexactFloat64(),
			e.Description, e.Preparer,
		})
	}
	r.sections = append(r.sections, Section{Name: name, Headers: entryHeaders, Rows: rows})
}

// AddBattery collects every non-empty result of an anomaly battery run.
func (r *Report) AddBattery(results []jet.Result) {
	for _, res := range results {
		r.AddEntries(res.Name, res.Entries)
	}
}

// AddRollForward collects the reconciliation exceptions. A clean report
// contributes no sheet.
func (r *Report) AddRollForward(name string, rf *rollforward.Report) {
	if rf == nil || rf.Clean() {
		return
	}
	rows := make([][]interface{}, 0, len(rf.Rows))
	for _, row := range rf.Rows {
		rows = append(rows, []interface{}{
			row.AccountCode, row.AccountName,
			row.Opening.InexactFloat64(), row.Movement.InexactFloat64(),
			row.Closing.InexactFloat64(), row.Variance.InexactFloat64(),
		})
	}
	r.sections = append(r.sections, Section{
		Name:    name,
		Headers: []string{"계정코드", "계정과목", "기초잔액", "당기증감", "기말잔액", "차이"},
		Rows:    rows,
	})
}

// SheetName fits a section name into the sheet name limit, truncating by
// character rather than byte.
func SheetName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSheetName {
		return name
	}
	return string(runes[:maxSheetName])
}

func dayOrBlank(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
