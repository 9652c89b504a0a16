package rollforward

import (
	"sort"

	"ledger-audit/feature/ledger"

	"github.com/shopspring/decimal"
)

// Row is the roll-forward result for a single account.
type Row struct {
	AccountCode string `json:"account_code"`
	AccountName string `json:"account_name"`

	// Opening is the signed prior-period balance, 0 when the account is
	// absent from the prior trial balance.
	Opening decimal.Decimal `json:"opening_balance"`

	// Movement is the signed period activity from the ledger.
	Movement decimal.Decimal `json:"period_movement"`

	// Closing is the signed current-period balance.
	Closing decimal.Decimal `json:"closing_balance"`

	// Variance is opening + movement - closing, rounded to whole currency
	// units.
	Variance decimal.Decimal `json:"variance"`
}

// Report bundles the outcome of one roll-forward run.
type Report struct {
	// Accounts is the size of the universal key set: every account any of
	// the three sources mentions.
	Accounts int `json:"accounts"`

	// Tolerance is the variance threshold that was applied.
	Tolerance decimal.Decimal `json:"tolerance"`

	// Rows holds only the accounts whose absolute variance exceeds the
	// tolerance, sorted by account code. Empty means a clean roll-forward.
	Rows []Row `json:"rows"`
}

// Clean reports whether the roll-forward held for every account.
func (r *Report) Clean() bool {
	return len(r.Rows) == 0
}

// RollForward verifies that prior balance plus period movement equals the
// current balance for every account mentioned by any source. Accounts
// missing from a source contribute 0 for that side; absence is a fact to
// report, not an error. The computation is pure: identical inputs always
// produce identical output.
func RollForward(gl *ledger.GL, prior, current *ledger.TrialBalance, tolerance decimal.Decimal) *Report {
	movements, glNames := AggregateGL(gl)
	opening, priorNames := sumBalances(prior)
	closing, currentNames := sumBalances(current)

	// Universal key set: union of the three sources.
	keys := make(map[string]struct{})
	for code := range movements {
		keys[code] = struct{}{}
	}
	for code := range opening {
		keys[code] = struct{}{}
	}
	for code := range closing {
		keys[code] = struct{}{}
	}

	report := &Report{Accounts: len(keys), Tolerance: tolerance}
	for code := range keys {
		variance := opening[code].Add(movements[code].Net).Sub(closing[code]).Round(0)
		if variance.Abs().Cmp(tolerance) <= 0 {
			continue
		}
		report.Rows = append(report.Rows, Row{
			AccountCode: code,
			AccountName: resolveName(code, currentNames, priorNames, glNames),
			Opening:     opening[code],
			Movement:    movements[code].Net,
			Closing:     closing[code],
			Variance:    variance,
		})
	}

	// Deterministic output order
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].AccountCode < report.Rows[j].AccountCode
	})
	return report
}

// sumBalances nets each trial balance account. Duplicate codes are summed so
// a split listing still reconciles against the aggregated ledger.
func sumBalances(tb *ledger.TrialBalance) (map[string]decimal.Decimal, map[string]string) {
	balances := make(map[string]decimal.Decimal, len(tb.Rows))
	names := make(map[string]string, len(tb.Rows))
	for _, row := range tb.Rows {
		balances[row.AccountCode] = balances[row.AccountCode].Add(row.Net())
		if _, seen := names[row.AccountCode]; !seen && row.AccountName != "" {
			names[row.AccountCode] = row.AccountName
		}
	}
	return balances, names
}

// resolveName prefers the current TB's name, then the prior TB's, then the
// ledger's, then the code itself.
func resolveName(code string, current, prior, gl map[string]string) string {
	if name := current[code]; name != "" {
		return name
	}
	if name := prior[code]; name != "" {
		return name
	}
	if name := gl[code]; name != "" {
		return name
	}
	return code
}
