package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindColumn_NormalizationVariants(t *testing.T) {
	aliases := []string{"차변잔액", "차변 잔액", "DR_BAL"}

	tests := []struct {
		name    string
		headers []string
		want    int
	}{
		{"exact", []string{"계정코드", "차변잔액"}, 1},
		{"internal space", []string{"계정코드", "차변 잔액"}, 1},
		{"surrounding space", []string{"계정코드", " 차변잔액 "}, 1},
		{"english underscore", []string{"ACCT_CD", "dr_bal"}, 1},
		{"english dotted", []string{"ACCT_CD", "DR.BAL"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindColumn(tt.headers, aliases, NormalizeStrict)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindColumn_AliasOrderWins(t *testing.T) {
	// "계정과목코드" appears before "계정코드" in the table, but the alias
	// list prefers "계정코드": alias order decides, not header order.
	headers := []string{"계정과목코드", "계정코드"}
	got, ok := FindColumn(headers, []string{"계정코드", "계정과목코드"}, NormalizeLoose)
	require.True(t, ok)
	assert.Equal(t, 1, got)
}

func TestFindColumn_NotFound(t *testing.T) {
	_, ok := FindColumn([]string{"A", "B"}, []string{"C"}, nil)
	assert.False(t, ok)
}

func TestNormalizeLoose_KeepsInternalWhitespace(t *testing.T) {
	assert.NotEqual(t, NormalizeLoose("차변 잔액"), NormalizeLoose("차변잔액"))
	assert.Equal(t, NormalizeLoose(" 차변잔액 "), NormalizeLoose("차변잔액"))
}

func TestSchemaResolve_BatchesMissing(t *testing.T) {
	schema := &Schema{
		Fields: []Field{
			{Name: "account code", Aliases: []string{"계정코드"}, Required: true},
			{Name: "debit balance", Aliases: []string{"차변잔액"}, Required: true},
			{Name: "credit balance", Aliases: []string{"대변잔액"}, Required: true},
			{Name: "account name", Aliases: []string{"계정과목"}},
		},
	}
	table := &Table{Name: "prior TB", Headers: []string{"계정코드", "금액"}}

	_, err := schema.Resolve(table)
	require.Error(t, err)

	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "prior TB", missing.Table)
	// Both missing required fields are listed at once; the optional one is not.
	assert.Equal(t, []string{"debit balance", "credit balance"}, missing.Missing)
	assert.Contains(t, err.Error(), "계정코드")
}

func TestSchemaResolve_OptionalAbsent(t *testing.T) {
	schema := &Schema{
		Fields: []Field{
			{Name: "code", Aliases: []string{"계정코드"}, Required: true},
			{Name: "description", Aliases: []string{"적요"}},
		},
	}
	table := &Table{Name: "gl", Headers: []string{"계정코드"}}

	cols, err := schema.Resolve(table)
	require.NoError(t, err)
	assert.Equal(t, 0, cols["code"])
	_, ok := cols["description"]
	assert.False(t, ok)
}

func TestResolveBalanceColumns_TwoTier(t *testing.T) {
	table := &Table{
		Name:    "current TB",
		Headers: []string{"계정과목", "차 변 잔 액", "차 변 합 계", "대 변 합 계", "대 변 잔 액"},
	}

	cols, err := ResolveBalanceColumns(table)
	require.NoError(t, err)
	assert.Equal(t, 1, cols.BalanceDebit)
	assert.Equal(t, 4, cols.BalanceCredit)
	assert.Equal(t, 2, cols.TotalDebit)
	assert.Equal(t, 3, cols.TotalCredit)
	assert.True(t, cols.HasTotals())
}

func TestResolveBalanceColumns_BalanceOnly(t *testing.T) {
	table := &Table{Headers: []string{"계정코드", "차변잔액", "대변잔액"}}

	cols, err := ResolveBalanceColumns(table)
	require.NoError(t, err)
	assert.False(t, cols.HasTotals())
	assert.Equal(t, 1, cols.BalanceDebit)
	assert.Equal(t, 2, cols.BalanceCredit)
}

func TestResolveBalanceColumns_MissingSide(t *testing.T) {
	table := &Table{Name: "tb", Headers: []string{"계정코드", "차변잔액"}}

	_, err := ResolveBalanceColumns(table)
	var missing *MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"credit balance"}, missing.Missing)
}

func TestTableCell_ShortRows(t *testing.T) {
	table := &Table{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]string{{"1", " 2 "}, {"3", "4", "5"}},
	}
	assert.Equal(t, "2", table.Cell(0, 1))
	assert.Equal(t, "", table.Cell(0, 2))
	assert.Equal(t, "5", table.Cell(1, 2))
	assert.Equal(t, "", table.Cell(9, 0))
	assert.Equal(t, []string{"2", "4"}, table.Column(1))
}
