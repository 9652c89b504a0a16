package rollforward

import "github.com/shopspring/decimal"

// Config holds configuration for the roll-forward checks.
type Config struct {
	// Tolerance is the acceptable rounding noise in currency units. A
	// variance or delta must strictly exceed it to be reported.
	Tolerance string `mapstructure:"tolerance" default:"1"`

	// TotalLabel is the sentinel identifying the trial balance's
	// grand-total row.
	TotalLabel string `mapstructure:"total_label" default:"합계"`
}

// ToleranceAmount parses the configured tolerance, falling back to 1
// currency unit on malformed input.
func (c Config) ToleranceAmount() decimal.Decimal {
	d, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return decimal.NewFromInt(1)
	}
	return d
}
