package rollforward

import (
	"ledger-audit/feature/ledger"

	"github.com/shopspring/decimal"
)

// Movement is the aggregated period activity of one account.
type Movement struct {
	// Debit and Credit are the summed posted amounts.
	Debit  decimal.Decimal
	Credit decimal.Decimal

	// Net is the signed movement, debit minus credit.
	Net decimal.Decimal
}

// AggregateGL groups posting lines by account identifier and sums each side
// into a net movement. The second map is a first-seen code-to-name lookup for
// display. Grouping is order-independent and summation is exact decimal
// arithmetic.
func AggregateGL(gl *ledger.GL) (map[string]Movement, map[string]string) {
	movements := make(map[string]Movement)
	names := make(map[string]string)

	for _, e := range gl.Entries {
		m := movements[e.AccountCode]
		m.Debit = m.Debit.Add(e.Debit)
		m.Credit = m.Credit.Add(e.Credit)
		m.Net = m.Debit.Sub(m.Credit)
		movements[e.AccountCode] = m

		if _, seen := names[e.AccountCode]; !seen && e.AccountName != "" {
			names[e.AccountCode] = e.AccountName
		}
	}
	return movements, names
}

// SumGL returns the grand totals of both sides of the ledger.
func SumGL(gl *ledger.GL) (debit, credit decimal.Decimal) {
	for _, e := range gl.Entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}
