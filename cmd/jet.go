package cmd

import (
	"bytes"
	"context"
	"fmt"

	"ledger-audit/core/config"
	"ledger-audit/core/logger"
	"ledger-audit/feature/jet"
	"ledger-audit/feature/ledger"
	"ledger-audit/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the jet command
	jetGLPath        string
	jetGLHeader      int
	jetKeywords      []string
	jetAccountCodes  []string
	jetAbnormalSales bool
	jetBackdateDays  int
	jetRareAccount   int
	jetRarePreparer  int
	jetStart         string
	jetEnd           string
	jetWeekend       bool
	jetHolidaysPath  string
	jetRepeatLen     int
	jetZeroDigits    int
	jetOutput        string
)

// jetCmd runs the journal-entry anomaly battery.
var jetCmd = &cobra.Command{
	Use:   "jet",
	Short: "Scan the ledger for journal-entry anomalies",
	Long: `Run the anomaly battery over a general ledger extract. Each scenario
is tuned by its own flag; a scenario with no flag given stays disabled and
reports nothing.

Examples:
  # Keyword and round-number scans
  ledger-audit jet --gl gl.xlsx --keywords 오류,수정 --zero-digits 3

  # Weekend/holiday postings with a custom holiday list
  ledger-audit jet --gl gl.xlsx --weekend --holidays holidays.csv

  # Rare accounts and preparers within the audit period
  ledger-audit jet --gl gl.csv --freq-account 5 --freq-user 3 \
    --start-date 2024-01-01 --end-date 2024-12-31 --output out/jet.xlsx`,
	RunE: runJet,
}

func init() {
	jetCmd.Flags().StringVar(&jetGLPath, "gl", "", "General ledger file (xlsx or csv)")
	jetCmd.Flags().IntVar(&jetGLHeader, "gl-header", 0, "0-based header row of the ledger")
	jetCmd.Flags().StringSliceVar(&jetKeywords, "keywords", nil, "Description keywords to flag (comma-separated)")
	jetCmd.Flags().StringSliceVar(&jetAccountCodes, "account-codes", nil, "Account codes to flag (comma-separated)")
	jetCmd.Flags().BoolVar(&jetAbnormalSales, "abnormal-sales", false, "Flag revenue booked on the wrong side or against unusual contra accounts")
	jetCmd.Flags().IntVar(&jetBackdateDays, "backdate-threshold", 0, "Flag entries keyed more than this many days after posting")
	jetCmd.Flags().IntVar(&jetRareAccount, "freq-account", 0, "Flag accounts used fewer than this many times")
	jetCmd.Flags().IntVar(&jetRarePreparer, "freq-user", 0, "Flag preparers with fewer than this many entries")
	jetCmd.Flags().StringVar(&jetStart, "start-date", "", "Start of the rarity-count window (inclusive)")
	jetCmd.Flags().StringVar(&jetEnd, "end-date", "", "End of the rarity-count window (inclusive)")
	jetCmd.Flags().BoolVar(&jetWeekend, "weekend", false, "Flag weekend and holiday postings")
	jetCmd.Flags().StringVar(&jetHolidaysPath, "holidays", "", "Holiday list file, one date per line (implies --weekend)")
	jetCmd.Flags().IntVar(&jetRepeatLen, "repeat-len", 0, "Flag amounts ending in this many identical digits")
	jetCmd.Flags().IntVar(&jetZeroDigits, "zero-digits", 0, "Flag amounts divisible by 10^N")
	jetCmd.Flags().StringVar(&jetOutput, "output", "", "Write hits to this xlsx file (default: timestamped name)")
	jetCmd.Flags().StringVar(&inputBucket, "bucket", "", "Read inputs from this storage bucket instead of local files")
	jetCmd.Flags().BoolVar(&uploadResult, "upload", false, "Upload the result workbook back to the bucket")

	_ = jetCmd.MarkFlagRequired("gl")

	RootCmd.AddCommand(jetCmd)
}

func runJet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	rep := report.New()
	l = logger.WithRunID(l, rep.RunID)

	gl, err := loadLedger(ctx, cfg, l, jetGLPath, jetGLHeader)
	if err != nil {
		return err
	}

	params, err := buildJetParams(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	results := jet.RunBattery(gl, params)
	total := 0
	for _, res := range results {
		if len(res.Entries) == 0 {
			continue
		}
		total += len(res.Entries)
		l.Warn("Scenario hits", zap.String("rule", res.Name), zap.Int("entries", len(res.Entries)))
	}
	if total == 0 {
		l.Info("No anomalies flagged")
	}

	rep.AddBattery(results)
	return saveReport(ctx, cfg, l, rep, "jet", jetOutput)
}

// buildJetParams merges the command flags with the configured defaults.
// Threshold-style scenarios fall back to the config value only when their
// flag was given without a value source, so an untouched flag keeps the
// scenario disabled.
func buildJetParams(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (jet.Params, error) {
	p := jet.Params{
		Keywords:              jetKeywords,
		AccountCodes:          jetAccountCodes,
		EnableAbnormalSales:   jetAbnormalSales,
		BackdateDays:          jetBackdateDays,
		RareAccountThreshold:  jetRareAccount,
		RarePreparerThreshold: jetRarePreparer,
		RepeatLength:          jetRepeatLen,
		ZeroDigits:            jetZeroDigits,
	}

	// A threshold flag given as 0 means "use the configured default".
	if cmd.Flags().Changed("freq-account") && jetRareAccount == 0 {
		p.RareAccountThreshold = cfg.Jet.RareAccountThreshold
	}
	if cmd.Flags().Changed("freq-user") && jetRarePreparer == 0 {
		p.RarePreparerThreshold = cfg.Jet.RarePreparerThreshold
	}
	if cmd.Flags().Changed("repeat-len") && jetRepeatLen == 0 {
		p.RepeatLength = cfg.Jet.RepeatLength
	}
	if cmd.Flags().Changed("zero-digits") && jetZeroDigits == 0 {
		p.ZeroDigits = cfg.Jet.ZeroDigits
	}

	if jetStart != "" {
		if p.Start = ledger.ParseDate(jetStart); p.Start.IsZero() {
			return p, fmt.Errorf("invalid --start-date: %q", jetStart)
		}
	}
	if jetEnd != "" {
		if p.End = ledger.ParseDate(jetEnd); p.End.IsZero() {
			return p, fmt.Errorf("invalid --end-date: %q", jetEnd)
		}
	}

	if jetHolidaysPath != "" {
		data, err := readInput(ctx, cfg, jetHolidaysPath)
		if err != nil {
			return p, fmt.Errorf("failed to open holiday list: %w", err)
		}
		holidays, err := jet.ParseHolidays(bytes.NewReader(data))
		if err != nil {
			return p, fmt.Errorf("failed to read holiday list: %w", err)
		}
		p.Holidays = holidays
		p.EnableWeekendHoliday = true
	}
	if jetWeekend {
		p.EnableWeekendHoliday = true
	}

	return p, nil
}
