package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ledger-audit/feature/jet"
	"ledger-audit/feature/ledger"
	"ledger-audit/feature/rollforward"
)

func sampleEntry(doc string, debit int64) ledger.Entry {
	return ledger.Entry{
		DocumentNo:  doc,
		AccountCode: "101",
		AccountName: "현금",
		Debit:       decimal.NewFromInt(debit),
		Preparer:    "kim",
	}
}

func TestReport_EmptySectionsSkipped(t *testing.T) {
	r := New()
	require.NotEmpty(t, r.RunID)

	r.AddEntries("빈 시나리오", nil)
	assert.True(t, r.Empty())

	r.AddEntries("적중", []ledger.Entry{sampleEntry("1", 100)})
	require.Len(t, r.Sections(), 1)
	assert.Equal(t, "적중", r.Sections()[0].Name)
}

func TestReport_BatteryInsertionOrder(t *testing.T) {
	r := New()
	r.AddBattery([]jet.Result{
		{Name: "S1", Entries: []ledger.Entry{sampleEntry("1", 10)}},
		{Name: "S2"},
		{Name: "S3", Entries: []ledger.Entry{sampleEntry("2", 20)}},
	})

	sections := r.Sections()
	require.Len(t, sections, 2)
	assert.Equal(t, "S1", sections[0].Name)
	assert.Equal(t, "S3", sections[1].Name)
}

func TestReport_CleanRollForwardContributesNothing(t *testing.T) {
	r := New()
	r.AddRollForward("롤포워드", &rollforward.Report{Accounts: 3})
	assert.True(t, r.Empty())

	r.AddRollForward("롤포워드", &rollforward.Report{
		Accounts: 3,
		Rows: []rollforward.Row{{
			AccountCode: "101",
			AccountName: "현금",
			Variance:    decimal.NewFromInt(5),
		}},
	})
	require.Len(t, r.Sections(), 1)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "short", SheetName("short"))

	long := strings.Repeat("가", 40)
	got := SheetName(long)
	assert.Equal(t, 31, len([]rune(got)))
	assert.Equal(t, strings.Repeat("가", 31), got)
}

func TestWriteXLSX(t *testing.T) {
	r := New()
	r.AddEntries("S1_적요키워드", []ledger.Entry{sampleEntry("DOC-1", 5000)})

	var buf bytes.Buffer
	require.NoError(t, r.WriteXLSX(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "S1_적요키워드"}, f.GetSheetList())

	runID, err := f.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, r.RunID, runID)

	doc, err := f.GetCellValue("S1_적요키워드", "C2")
	require.NoError(t, err)
	assert.Equal(t, "DOC-1", doc)
}
