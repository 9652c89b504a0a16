package ledger

import (
	"testing"

	"ledger-audit/core/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tbTable(name string, headers []string, rows [][]string) *tabular.Table {
	return &tabular.Table{Name: name, Headers: headers, Rows: rows}
}

func TestLoadTB_SingleGroupLayout(t *testing.T) {
	table := tbTable("prior.csv",
		[]string{"계정코드", "계정과목", "차변잔액", "대변잔액"},
		[][]string{
			{"101", "현금", "1,000", "0"},
			{"401", "상품매출", "0", "1,000"},
			{"", "합계", "1,000", "1,000"},
		},
	)

	tb, err := LoadTB(table, TBOptions{})
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "1000", tb.Rows[0].Net().String())
	assert.Equal(t, "-1000", tb.Rows[1].Net().String())

	require.NotNil(t, tb.Total)
	assert.False(t, tb.Total.HasTotals)
	assert.Equal(t, "1000", tb.Total.BalanceDebit.String())
	assert.Equal(t, "1000", tb.Total.BalanceCredit.String())
}

func TestLoadTB_TwoGroupLayout(t *testing.T) {
	table := tbTable("current.xlsx",
		[]string{"계정코드", "계정과목", "차 변 합 계", "차 변 잔 액", "대 변 잔 액", "대 변 합 계"},
		[][]string{
			{"101", "현금", "500", "100", "0", "400"},
			{"", "합계", "500", "100", "0", "400"},
		},
	)

	tb, err := LoadTB(table, TBOptions{})
	require.NoError(t, err)
	require.Len(t, tb.Rows, 1)
	assert.Equal(t, "100", tb.Rows[0].Debit.String())

	require.NotNil(t, tb.Total)
	assert.True(t, tb.Total.HasTotals)
	assert.Equal(t, "500", tb.Total.TotalDebit.String())
	assert.Equal(t, "400", tb.Total.TotalCredit.String())
	assert.Equal(t, "100", tb.Total.BalanceDebit.String())
}

func TestLoadTB_CustomTotalLabel(t *testing.T) {
	table := tbTable("tb.csv",
		[]string{"계정코드", "계정과목", "차변잔액", "대변잔액"},
		[][]string{
			{"101", "현금", "10", "0"},
			{"", "total", "10", "10"},
		},
	)

	tb, err := LoadTB(table, TBOptions{TotalLabel: "total"})
	require.NoError(t, err)
	require.NotNil(t, tb.Total)
	assert.Len(t, tb.Rows, 1)
}

func TestLoadTB_NoTotalRow(t *testing.T) {
	table := tbTable("tb.csv",
		[]string{"계정코드", "계정과목", "차변잔액", "대변잔액"},
		[][]string{{"101", "현금", "10", "0"}},
	)

	tb, err := LoadTB(table, TBOptions{})
	require.NoError(t, err)
	assert.Nil(t, tb.Total)
	assert.Len(t, tb.Rows, 1)
}

func TestLoadTB_UnparseableTotalRow(t *testing.T) {
	table := tbTable("tb.csv",
		[]string{"계정코드", "계정과목", "차변잔액", "대변잔액"},
		[][]string{
			{"101", "현금", "10", "0"},
			{"", "합계", "상동", "10"},
		},
	)

	_, err := LoadTB(table, TBOptions{})
	var unparseable *UnparseableTotalRowError
	require.ErrorAs(t, err, &unparseable)
	assert.Equal(t, "차변잔액", unparseable.Column)
	assert.Equal(t, "상동", unparseable.Value)
}

func TestLoadTB_MissingBalanceColumns(t *testing.T) {
	table := tbTable("tb.csv", []string{"계정코드", "계정과목", "금액"}, nil)

	_, err := LoadTB(table, TBOptions{})
	var missing *tabular.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tb.csv", missing.Table)
	assert.ElementsMatch(t, []string{"debit balance", "credit balance"}, missing.Missing)
}

func TestLoadTB_EnglishHeaders(t *testing.T) {
	table := tbTable("tb.csv",
		[]string{"ACCT_CD", "ACCT_NAME", "DR_BAL", "CR_BAL"},
		[][]string{{"101", "Cash", "250", "0"}},
	)

	tb, err := LoadTB(table, TBOptions{})
	require.NoError(t, err)
	require.Len(t, tb.Rows, 1)
	assert.Equal(t, "250", tb.Rows[0].Debit.String())
}

func TestLoadTB_SkipsPaddingRows(t *testing.T) {
	table := tbTable("tb.csv",
		[]string{"계정코드", "계정과목", "차변잔액", "대변잔액"},
		[][]string{
			{"101", "현금", "10", "0"},
			{"", "", "", ""},
		},
	)

	tb, err := LoadTB(table, TBOptions{})
	require.NoError(t, err)
	assert.Len(t, tb.Rows, 1)
}
