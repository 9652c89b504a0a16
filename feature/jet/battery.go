package jet

import (
	"sync"

	"ledger-audit/feature/ledger"
)

// Scenario names, in battery order.
const (
	RuleKeyword         = "S1_적요키워드"
	RuleTargetedAccount = "S2_대상계정"
	RuleAbnormalSales   = "S3_비정상매출"
	RuleBackdated       = "S4_기표지연"
	RuleRareAccount     = "S5_희귀계정"
	RuleRarePreparer    = "S6_희귀입력자"
	RuleWeekendHoliday  = "S7_주말휴일거래"
	RuleRepeatingDigits = "S8_반복숫자"
	RuleRoundNumbers    = "S9_라운드넘버"
)

// Result is the outcome of one rule: its scenario name and the flagged
// entries, in ledger order. An empty Entries slice means the rule found
// nothing or was disabled.
type Result struct {
	Name    string
	Entries []ledger.Entry
}

type rule struct {
	name string
	run  func(*ledger.GL, Params) []ledger.Entry
}

var rules = []rule{
	{RuleKeyword, func(gl *ledger.GL, p Params) []ledger.Entry {
		return KeywordMatches(gl, p.Keywords)
	}},
	{RuleTargetedAccount, func(gl *ledger.GL, p Params) []ledger.Entry {
		return TargetedAccounts(gl, p.AccountCodes)
	}},
	{RuleAbnormalSales, func(gl *ledger.GL, p Params) []ledger.Entry {
		if !p.EnableAbnormalSales {
			return nil
		}
		return AbnormalSales(gl, p.SalesPattern, p.AllowedContras)
	}},
	{RuleBackdated, func(gl *ledger.GL, p Params) []ledger.Entry {
		return Backdated(gl, p.BackdateDays)
	}},
	{RuleRareAccount, func(gl *ledger.GL, p Params) []ledger.Entry {
		return RareAccounts(gl, p.RareAccountThreshold, p.Start, p.End)
	}},
	{RuleRarePreparer, func(gl *ledger.GL, p Params) []ledger.Entry {
		return RarePreparers(gl, p.RarePreparerThreshold, p.Start, p.End)
	}},
	{RuleWeekendHoliday, func(gl *ledger.GL, p Params) []ledger.Entry {
		if !p.EnableWeekendHoliday {
			return nil
		}
		return WeekendHoliday(gl, p.Holidays)
	}},
	{RuleRepeatingDigits, func(gl *ledger.GL, p Params) []ledger.Entry {
		return RepeatingDigits(gl, p.RepeatLength)
	}},
	{RuleRoundNumbers, func(gl *ledger.GL, p Params) []ledger.Entry {
		return RoundNumbers(gl, p.ZeroDigits)
	}},
}

// RunBattery evaluates every rule against the ledger. The rules are
// independent and run concurrently; the results come back in scenario
// order regardless.
func RunBattery(gl *ledger.GL, p Params) []Result {
	results := make([]Result, len(rules))

	var wg sync.WaitGroup
	for i, r := range rules {
		wg.Add(1)
		go func(i int, r rule) {
			defer wg.Done()
			results[i] = Result{Name: r.name, Entries: r.run(gl, p)}
		}(i, r)
	}
	wg.Wait()

	return results
}
