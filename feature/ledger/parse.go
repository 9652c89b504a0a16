package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts covers the formats seen across ERP exports, including the
// default rendering excelize gives date-styled cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"20060102",
	"2006-01-02 15:04:05",
	"01-02-06",
}

// ParseAmount coerces a raw cell into a decimal amount. Thousands
// separators are stripped; empty or unparseable values become 0.
func ParseAmount(s string) decimal.Decimal {
	d, err := parseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmountStrict coerces a raw cell into a decimal amount, failing on
// unparseable non-empty input. Used where a default of 0 would hide a broken
// source, e.g. the grand-total row.
func ParseAmountStrict(s string) (decimal.Decimal, error) {
	return parseAmount(s)
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" || s == "-" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unparseable amount %q", s)
	}
	return d, nil
}

// ParseDate coerces a raw cell into a date. Unparseable values return the
// zero time rather than an error; callers decide whether that is fatal.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Midnight truncates a timestamp to its date, preserving the location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
