package cmd

import (
	"context"
	"fmt"

	"ledger-audit/core/config"
	"ledger-audit/core/loader"
	"ledger-audit/core/logger"
	"ledger-audit/feature/ledger"
	"ledger-audit/feature/report"
	"ledger-audit/feature/rollforward"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the rollforward command
	rfGLPath     string
	rfPrevPath   string
	rfCurrPath   string
	rfGLHeader   int
	rfPrevHeader int
	rfCurrHeader int
	rfTwoRow     bool
	rfTolerance  string
	rfTotalLabel string
	rfOutput     string
)

// rollforwardCmd reconciles opening balance + ledger activity = closing balance.
var rollforwardCmd = &cobra.Command{
	Use:   "rollforward",
	Short: "Reconcile the ledger against the opening and closing trial balances",
	Long: `Reconcile account by account: prior-period closing balance plus the
ledger's net movement must equal the current closing balance. Accounts whose
variance exceeds the tolerance are reported, together with a cross-check of
the grand totals.

Examples:
  # Local files, headers on the first row
  ledger-audit rollforward --gl gl.xlsx --prev tb_2023.xlsx --curr tb_2024.xlsx

  # Trial balances with a two-row debit/credit header
  ledger-audit rollforward --gl gl.csv --prev prev.xlsx --curr curr.xlsx --two-row-header

  # Inputs from object storage, report written locally
  ledger-audit rollforward --bucket audit-files --gl 2024/gl.xlsx \
    --prev 2024/prev.xlsx --curr 2024/curr.xlsx --output out/rollforward.xlsx`,
	RunE: runRollForward,
}

func init() {
	rollforwardCmd.Flags().StringVar(&rfGLPath, "gl", "", "General ledger file (xlsx or csv)")
	rollforwardCmd.Flags().StringVar(&rfPrevPath, "prev", "", "Prior-period trial balance file")
	rollforwardCmd.Flags().StringVar(&rfCurrPath, "curr", "", "Current-period trial balance file")
	rollforwardCmd.Flags().IntVar(&rfGLHeader, "gl-header", 0, "0-based header row of the ledger")
	rollforwardCmd.Flags().IntVar(&rfPrevHeader, "prev-header", 0, "0-based header row of the prior trial balance")
	rollforwardCmd.Flags().IntVar(&rfCurrHeader, "curr-header", 0, "0-based header row of the current trial balance")
	rollforwardCmd.Flags().BoolVar(&rfTwoRow, "two-row-header", false, "Trial balance headers span two rows (debit/credit over balance/total)")
	rollforwardCmd.Flags().StringVar(&rfTolerance, "tolerance", "", "Variance tolerance in currency units (default from config)")
	rollforwardCmd.Flags().StringVar(&rfTotalLabel, "total-label", "", "Label of the trial balance grand-total row (default from config)")
	rollforwardCmd.Flags().StringVar(&rfOutput, "output", "", "Write exceptions to this xlsx file (default: timestamped name)")
	rollforwardCmd.Flags().StringVar(&inputBucket, "bucket", "", "Read inputs from this storage bucket instead of local files")
	rollforwardCmd.Flags().BoolVar(&uploadResult, "upload", false, "Upload the result workbook back to the bucket")

	_ = rollforwardCmd.MarkFlagRequired("gl")
	_ = rollforwardCmd.MarkFlagRequired("prev")
	_ = rollforwardCmd.MarkFlagRequired("curr")

	RootCmd.AddCommand(rollforwardCmd)
}

func runRollForward(cmd *cobra.Command, args []string) error {
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

	rfCfg := cfg.RollForward
	if rfTolerance != "" {
		rfCfg.Tolerance = rfTolerance
	}
	if rfTotalLabel != "" {
		rfCfg.TotalLabel = rfTotalLabel
	}
	tolerance := rfCfg.ToleranceAmount()

	gl, err := loadLedger(ctx, cfg, l, rfGLPath, rfGLHeader)
	if err != nil {
		return err
	}

	tbOpts := ledger.TBOptions{TotalLabel: rfCfg.TotalLabel}
	prior, err := loadTrialBalance(ctx, cfg, rfPrevPath, rfPrevHeader, tbOpts)
	if err != nil {
		return err
	}
	current, err := loadTrialBalance(ctx, cfg, rfCurrPath, rfCurrHeader, tbOpts)
	if err != nil {
		return err
	}

	result := rollforward.RollForward(gl, prior, current, tolerance)
	if result.Clean() {
		l.Info("Roll-forward clean",
			zap.Int("accounts", result.Accounts),
			zap.String("tolerance", tolerance.String()))
	} else {
		l.Warn("Roll-forward variances found",
			zap.Int("accounts", result.Accounts),
			zap.Int("exceptions", len(result.Rows)))
		for _, row := range result.Rows {
			l.Warn("Variance",
				zap.String("account", row.AccountCode),
				zap.String("name", row.AccountName),
				zap.String("opening", row.Opening.String()),
				zap.String("movement", row.Movement.String()),
				zap.String("closing", row.Closing.String()),
				zap.String("variance", row.Variance.String()))
		}
	}

	check, err := rollforward.CrossCheckTotals(gl, current, tolerance)
	if err != nil {
		return err
	}
	if check.Pass {
		l.Info("Grand totals match",
			zap.String("gl_debit", check.GLDebit.String()),
			zap.String("tb_debit", check.TBDebit.String()))
	} else {
		l.Warn("Grand totals do not match",
			zap.String("delta_gl", check.DeltaGL.String()),
			zap.String("delta_tb", check.DeltaTB.String()),
			zap.String("delta_debit", check.DeltaDebit.String()),
			zap.String("delta_credit", check.DeltaCredit.String()))
	}

	rep.AddRollForward("롤포워드_차이", result)
	return saveReport(ctx, cfg, l, rep, "rollforward", rfOutput)
}

// loadLedger reads and parses a general ledger input, logging its data
// quality counters.
func loadLedger(ctx context.Context, cfg *config.Config, l *zap.Logger, path string, headerRow int) (*ledger.GL, error) {
	table, err := openTable(ctx, cfg, path, loader.Options{HeaderRow: headerRow})
	if err != nil {
		return nil, err
	}
	gl, err := ledger.LoadGL(table)
	if err != nil {
		return nil, err
	}
	l.Info("Ledger loaded",
		zap.String("file", path),
		zap.Int("entries", len(gl.Entries)))
	if gl.BadPostingDates > 0 {
		l.Warn("Unparseable posting dates", zap.Int("rows", gl.BadPostingDates))
	}
	if gl.GroupedByName {
		l.Info("No account code column; grouping by account name")
	}
	return gl, nil
}

func loadTrialBalance(ctx context.Context, cfg *config.Config, path string, headerRow int, opts ledger.TBOptions) (*ledger.TrialBalance, error) {
	table, err := openTable(ctx, cfg, path, loader.Options{HeaderRow: headerRow, TwoRowHeader: rfTwoRow})
	if err != nil {
		return nil, err
	}
	return ledger.LoadTB(table, opts)
}
