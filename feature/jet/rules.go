package jet

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledger-audit/feature/ledger"
)

// KeywordMatches returns the entries whose description contains any of the
// keywords, compared case-insensitively as literal substrings. Without
// keywords, or without a description column in the ledger, the rule is
// inactive.
func KeywordMatches(gl *ledger.GL, keywords []string) []ledger.Entry {
	if len(keywords) == 0 || !gl.HasDescription {
		return nil
	}
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	if len(quoted) == 0 {
		return nil
	}
	re := regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))

	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if re.MatchString(e.Description) {
			hits = append(hits, e)
		}
	}
	return hits
}

// TargetedAccounts returns the entries posted to any of the given account
// codes.
func TargetedAccounts(gl *ledger.GL, codes []string) []ledger.Entry {
	if len(codes) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			wanted[c] = struct{}{}
		}
	}

	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if _, ok := wanted[e.AccountCode]; ok {
			hits = append(hits, e)
		}
	}
	return hits
}

// AbnormalSales flags whole journal documents that book revenue against
// something other than the allowed settlement accounts, or book it on the
// wrong side. A document is abnormal when it has a sales line that is
// debited (or carries a negative credit), or when any of its contra lines
// names an account outside the allowed set. A document whose only lines are
// sales lines has nothing to judge and passes. All lines of an abnormal
// document are returned, in ledger order.
func AbnormalSales(gl *ledger.GL, salesPattern string, allowedContras []string) []ledger.Entry {
	if salesPattern == "" {
		salesPattern = DefaultSalesPattern
	}
	salesRe, err := regexp.Compile(salesPattern)
	if err != nil {
		return nil
	}
	if allowedContras == nil {
		allowedContras = DefaultAllowedContras
	}
	allowed := make(map[string]struct{}, len(allowedContras))
	for _, name := range allowedContras {
		allowed[strings.TrimSpace(name)] = struct{}{}
	}

	type docState struct {
		hasSales bool
		abnormal bool
	}
	docs := make(map[string]*docState)
	for _, e := range gl.Entries {
		state := docs[e.DocumentNo]
		if state == nil {
			state = &docState{}
			docs[e.DocumentNo] = state
		}
		if salesRe.MatchString(e.AccountName) {
			state.hasSales = true
			if e.Debit.IsPositive() || e.Credit.IsNegative() {
				state.abnormal = true
			}
			continue
		}
		if _, ok := allowed[strings.TrimSpace(e.AccountName)]; !ok {
			state.abnormal = true
		}
	}

	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if state := docs[e.DocumentNo]; state.hasSales && state.abnormal {
			hits = append(hits, e)
		}
	}
	return hits
}

// Backdated returns the entries keyed into the system strictly more than
// the given number of days after their posting date. Entries with either
// date missing are skipped; without an entry-date column the rule is
// inactive.
func Backdated(gl *ledger.GL, days int) []ledger.Entry {
	if days <= 0 || !gl.HasEntryDate {
		return nil
	}
	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if e.PostingDate.IsZero() || e.EntryDate.IsZero() {
			continue
		}
		delay := int(ledger.Midnight(e.EntryDate).Sub(ledger.Midnight(e.PostingDate)).Hours() / 24)
		if delay > days {
			hits = append(hits, e)
		}
	}
	return hits
}

// RareAccounts returns the entries within the window whose account code
// occurs strictly fewer than threshold times in that window.
func RareAccounts(gl *ledger.GL, threshold int, start, end time.Time) []ledger.Entry {
	if threshold <= 0 {
		return nil
	}
	return rareBy(gl, threshold, start, end, func(e ledger.Entry) string { return e.AccountCode })
}

// RarePreparers returns the entries within the window whose preparer occurs
// strictly fewer than threshold times in that window.
func RarePreparers(gl *ledger.GL, threshold int, start, end time.Time) []ledger.Entry {
	if threshold <= 0 {
		return nil
	}
	return rareBy(gl, threshold, start, end, func(e ledger.Entry) string { return e.Preparer })
}

func rareBy(gl *ledger.GL, threshold int, start, end time.Time, key func(ledger.Entry) string) []ledger.Entry {
	window := make([]ledger.Entry, 0, len(gl.Entries))
	counts := make(map[string]int)
	for _, e := range gl.Entries {
		if !withinWindow(e.PostingDate, start, end) {
			continue
		}
		window = append(window, e)
		counts[key(e)]++
	}

	var hits []ledger.Entry
	for _, e := range window {
		if counts[key(e)] < threshold {
			hits = append(hits, e)
		}
	}
	return hits
}

// withinWindow reports whether t falls inside [start, end], where a zero
// bound is open. A missing date cannot satisfy a set bound.
func withinWindow(t time.Time, start, end time.Time) bool {
	if !start.IsZero() && (t.IsZero() || t.Before(start)) {
		return false
	}
	if !end.IsZero() && (t.IsZero() || t.After(end)) {
		return false
	}
	return true
}

// WeekendHoliday returns the entries posted on a Saturday, a Sunday, or a
// date in the holiday set. Entries without a posting date are skipped.
func WeekendHoliday(gl *ledger.GL, holidays map[string]struct{}) []ledger.Entry {
	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if e.PostingDate.IsZero() {
			continue
		}
		wd := e.PostingDate.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			hits = append(hits, e)
			continue
		}
		if _, ok := holidays[DayKey(e.PostingDate)]; ok {
			hits = append(hits, e)
		}
	}
	return hits
}

// RepeatingDigits returns the entries where either amount's integer part
// ends in a run of at least n identical digits. n below 2 disables the
// rule.
func RepeatingDigits(gl *ledger.GL, n int) []ledger.Entry {
	if n < 2 {
		return nil
	}
	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if trailingRun(e.Debit) >= n || trailingRun(e.Credit) >= n {
			hits = append(hits, e)
		}
	}
	return hits
}

// trailingRun counts the identical digits at the end of the amount's
// integer part.
func trailingRun(amount decimal.Decimal) int {
	digits := amount.Abs().Truncate(0).String()
	if digits == "" {
		return 0
	}
	last := digits[len(digits)-1]
	run := 0
	for i := len(digits) - 1; i >= 0 && digits[i] == last; i-- {
		run++
	}
	return run
}

// RoundNumbers returns the entries where either amount has a non-zero
// integer part divisible by 10^k. k below 1 disables the rule.
func RoundNumbers(gl *ledger.GL, k int) []ledger.Entry {
	if k < 1 {
		return nil
	}
	factor := decimal.New(1, int32(k))

	isRound := func(amount decimal.Decimal) bool {
		whole := amount.Abs().Truncate(0)
		return !whole.IsZero() && whole.Mod(factor).IsZero()
	}

	var hits []ledger.Entry
	for _, e := range gl.Entries {
		if isRound(e.Debit) || isRound(e.Credit) {
			hits = append(hits, e)
		}
	}
	return hits
}
