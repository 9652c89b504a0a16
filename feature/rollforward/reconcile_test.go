package rollforward

import (
	"testing"

	"ledger-audit/feature/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	out, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return out
}

func entry(code, name, debit, credit string) ledger.Entry {
	return ledger.Entry{AccountCode: code, AccountName: name, Debit: d(debit), Credit: d(credit)}
}

func balance(code, name, debit, credit string) ledger.BalanceRow {
	return ledger.BalanceRow{AccountCode: code, AccountName: name, Debit: d(debit), Credit: d(credit)}
}

func tolerance() decimal.Decimal { return decimal.NewFromInt(1) }

func TestAggregateGL(t *testing.T) {
	gl := &ledger.GL{Entries: []ledger.Entry{
		entry("101", "현금", "100", "0"),
		entry("101", "현금", "0", "30"),
		entry("401", "", "0", "70"),
	}}

	movements, names := AggregateGL(gl)
	require.Len(t, movements, 2)
	assert.Equal(t, "100", movements["101"].Debit.String())
	assert.Equal(t, "30", movements["101"].Credit.String())
	assert.Equal(t, "70", movements["101"].Net.String())
	assert.Equal(t, "-70", movements["401"].Net.String())
	assert.Equal(t, "현금", names["101"])
	_, ok := names["401"]
	assert.False(t, ok)
}

func TestRollForward_BalancedAccountNotReported(t *testing.T) {
	// opening 100, movement +30 (debit 50 / credit 20), closing 130
	gl := &ledger.GL{Entries: []ledger.Entry{
		entry("101", "현금", "50", "0"),
		entry("101", "현금", "0", "20"),
	}}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "130", "0")}}

	report := RollForward(gl, prior, current, tolerance())
	assert.True(t, report.Clean())
	assert.Equal(t, 1, report.Accounts)
}

func TestRollForward_VarianceReported(t *testing.T) {
	gl := &ledger.GL{Entries: []ledger.Entry{
		entry("101", "현금", "50", "0"),
		entry("101", "현금", "0", "20"),
	}}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "135", "0")}}

	report := RollForward(gl, prior, current, tolerance())
	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, "100", row.Opening.String())
	assert.Equal(t, "30", row.Movement.String())
	assert.Equal(t, "135", row.Closing.String())
	assert.Equal(t, "-5", row.Variance.String())
}

func TestRollForward_ToleranceBoundaryIsStrict(t *testing.T) {
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}
	gl := &ledger.GL{}

	// variance exactly 1: not reported
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "99", "0")}}
	report := RollForward(gl, prior, current, tolerance())
	assert.True(t, report.Clean())

	// variance 2: reported
	current = &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "98", "0")}}
	report = RollForward(gl, prior, current, tolerance())
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "2", report.Rows[0].Variance.String())
}

func TestRollForward_OuterJoinCompleteness(t *testing.T) {
	// Each account appears in exactly one source and is unbalanced there.
	gl := &ledger.GL{Entries: []ledger.Entry{entry("GL1", "원장계정", "500", "0")}}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("PR1", "전기계정", "300", "0")}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("CU1", "당기계정", "0", "200")}}

	report := RollForward(gl, prior, current, tolerance())
	assert.Equal(t, 3, report.Accounts)
	require.Len(t, report.Rows, 3)

	// Sorted by account code, missing sides defaulted to 0.
	assert.Equal(t, "CU1", report.Rows[0].AccountCode)
	assert.Equal(t, "200", report.Rows[0].Variance.String())
	assert.Equal(t, "GL1", report.Rows[1].AccountCode)
	assert.Equal(t, "500", report.Rows[1].Variance.String())
	assert.Equal(t, "PR1", report.Rows[2].AccountCode)
	assert.Equal(t, "300", report.Rows[2].Variance.String())
}

func TestRollForward_InPeriodAccountNetsToZero(t *testing.T) {
	// Opened and closed within the period: GL activity only, balanced.
	gl := &ledger.GL{Entries: []ledger.Entry{
		entry("901", "임시계정", "250", "0"),
		entry("901", "임시계정", "0", "250"),
	}}
	empty := &ledger.TrialBalance{}

	report := RollForward(gl, empty, empty, tolerance())
	assert.Equal(t, 1, report.Accounts)
	assert.True(t, report.Clean())
}

func TestRollForward_NamePreference(t *testing.T) {
	gl := &ledger.GL{Entries: []ledger.Entry{entry("101", "원장이름", "5", "0")}}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "전기이름", "0", "0")}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "당기이름", "100", "0")}}

	report := RollForward(gl, prior, current, tolerance())
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "당기이름", report.Rows[0].AccountName)

	// Without a current-TB name, the prior name wins; without either, the
	// ledger's; with none at all, the code stands in.
	current.Rows[0].AccountName = ""
	report = RollForward(gl, prior, current, tolerance())
	assert.Equal(t, "전기이름", report.Rows[0].AccountName)

	prior.Rows[0].AccountName = ""
	report = RollForward(gl, prior, current, tolerance())
	assert.Equal(t, "원장이름", report.Rows[0].AccountName)

	gl.Entries[0].AccountName = ""
	report = RollForward(gl, prior, current, tolerance())
	assert.Equal(t, "101", report.Rows[0].AccountName)
}

func TestRollForward_Idempotent(t *testing.T) {
	gl := &ledger.GL{}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}

	for i := 0; i < 3; i++ {
		report := RollForward(gl, prior, current, tolerance())
		assert.True(t, report.Clean())
		assert.Equal(t, 1, report.Accounts)
	}
}

func TestRollForward_DuplicateTBRowsSum(t *testing.T) {
	gl := &ledger.GL{}
	prior := &ledger.TrialBalance{Rows: []ledger.BalanceRow{
		balance("101", "현금", "60", "0"),
		balance("101", "현금", "40", "0"),
	}}
	current := &ledger.TrialBalance{Rows: []ledger.BalanceRow{balance("101", "현금", "100", "0")}}

	report := RollForward(gl, prior, current, tolerance())
	assert.True(t, report.Clean())
}
