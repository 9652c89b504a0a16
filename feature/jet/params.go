package jet

import (
	"bufio"
	"io"
	"strings"
	"time"

	"ledger-audit/feature/ledger"
)

// DefaultSalesPattern matches the revenue account names the abnormal-sales
// rule screens for.
const DefaultSalesPattern = `제품매출|상품매출`

// DefaultAllowedContras are the account names considered normal on the
// opposite side of a sales entry.
var DefaultAllowedContras = []string{
	"현금", "당좌예금", "보통예금", "외상매출금", "받을어음", "미수금", "선수금",
}

// Params selects and tunes the rules of one battery run. A rule with a zero
// parameter (empty list, threshold ≤ 0, unset flag) is disabled and returns
// an empty result.
type Params struct {
	// Keywords drives the description keyword rule; literal substrings,
	// case-insensitive.
	Keywords []string

	// AccountCodes is the explicit allow-list for the targeted-accounts
	// rule.
	AccountCodes []string

	// EnableAbnormalSales turns on the sales-combination rule.
	EnableAbnormalSales bool

	// SalesPattern overrides DefaultSalesPattern.
	SalesPattern string

	// AllowedContras overrides DefaultAllowedContras.
	AllowedContras []string

	// BackdateDays is the strict threshold, in days, between posting and
	// entry date. ≤ 0 disables the rule.
	BackdateDays int

	// RareAccountThreshold and RarePreparerThreshold flag identifiers
	// whose occurrence count is strictly below the threshold. ≤ 0
	// disables.
	RareAccountThreshold  int
	RarePreparerThreshold int

	// Start and End bound the window of the rarity counts, inclusive on
	// both ends. Zero means unbounded on that side.
	Start time.Time
	End   time.Time

	// EnableWeekendHoliday turns on the weekend/holiday rule.
	EnableWeekendHoliday bool

	// Holidays holds extra non-working dates, keyed by day (see DayKey).
	Holidays map[string]struct{}

	// RepeatLength is the minimum trailing-digit run length (≥ 2).
	RepeatLength int

	// ZeroDigits is k in the 10^k round-number divisor (≥ 1).
	ZeroDigits int
}

// Config holds the battery defaults bound from the environment; CLI flags
// override them per run.
type Config struct {
	// RareAccountThreshold is the default occurrence count below which an
	// account is rare.
	RareAccountThreshold int `mapstructure:"rare_account_threshold" default:"5"`
	// RarePreparerThreshold is the default entry count below which a
	// preparer is rare.
	RarePreparerThreshold int `mapstructure:"rare_preparer_threshold" default:"3"`
	// RepeatLength is the default trailing-digit run length.
	RepeatLength int `mapstructure:"repeat_length" default:"3"`
	// ZeroDigits is the default round-number exponent.
	ZeroDigits int `mapstructure:"zero_digits" default:"3"`
}

// DayKey normalizes a timestamp to the key used in the holiday set.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseHolidays reads a holiday list: one date per line, or the first
// comma-separated field of each line. Blank and unparseable lines are
// skipped.
func ParseHolidays(r io.Reader) (map[string]struct{}, error) {
	holidays := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		field := scanner.Text()
		if i := strings.IndexByte(field, ','); i >= 0 {
			field = field[:i]
		}
		day := ledger.ParseDate(strings.TrimSpace(field))
		if day.IsZero() {
			continue
		}
		holidays[DayKey(day)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return holidays, nil
}
