package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"ledger-audit/core/config"
	"ledger-audit/core/loader"
	"ledger-audit/core/storage"
	"ledger-audit/core/tabular"
	"ledger-audit/feature/report"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Flags shared by the subcommands: when --bucket is set, input paths are
// object names fetched from storage instead of local files, and --upload
// sends the result workbook back to the same bucket.
var (
	inputBucket  string
	uploadResult bool
)

// openTable reads one input table either from the local filesystem or from
// object storage.
func openTable(ctx context.Context, cfg *config.Config, path string, opts loader.Options) (*tabular.Table, error) {
	if inputBucket == "" {
		return loader.LoadFile(path, opts)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	ok, err := client.BucketExists(ctx, inputBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", inputBucket, err)
	}
	if !ok {
		return nil, fmt.Errorf("bucket %s does not exist", inputBucket)
	}
	return fetchTable(ctx, client, inputBucket, path, opts)
}

// fetchTable downloads an object and parses it as a tabular source.
func fetchTable(ctx context.Context, client storage.Client, bucket, path string, opts loader.Options) (*tabular.Table, error) {
	obj, err := client.GetObject(ctx, bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from bucket %s: %w", path, bucket, err)
	}
	defer obj.Close()

	return loader.Load(obj, path, opts)
}

// readInput reads a raw auxiliary input (e.g. a holiday list) from the same
// source the tables come from.
func readInput(ctx context.Context, cfg *config.Config, path string) ([]byte, error) {
	if inputBucket == "" {
		return os.ReadFile(path)
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}
	obj, err := client.GetObject(ctx, inputBucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s from bucket %s: %w", path, inputBucket, err)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(obj); err != nil {
		return nil, fmt.Errorf("failed to read %s from bucket %s: %w", path, inputBucket, err)
	}
	return buf.Bytes(), nil
}

// defaultOutput names a result workbook after the command, the run time and
// the run identifier.
func defaultOutput(prefix, runID string) string {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s_%s_%s.xlsx", prefix, time.Now().Format("20060102_150405"), short)
}

// saveReport writes the workbook locally, or uploads it when --upload was
// given with --bucket. An empty path falls back to the default name.
func saveReport(ctx context.Context, cfg *config.Config, l *zap.Logger, rep *report.Report, prefix, path string) error {
	if rep.Empty() {
		return nil
	}
	if path == "" {
		path = defaultOutput(prefix, rep.RunID)
	}

	if uploadResult && inputBucket != "" {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		var buf bytes.Buffer
		if err := rep.WriteXLSX(&buf); err != nil {
			return err
		}
		if _, err := client.PutObject(ctx, inputBucket, path, &buf, int64(buf.Len()), minio.PutObjectOptions{}); err != nil {
			return fmt.Errorf("failed to upload %s to bucket %s: %w", path, inputBucket, err)
		}
		l.Info("Report uploaded", zap.String("bucket", inputBucket), zap.String("object", path))
		return nil
	}

	if err := rep.SaveXLSX(path); err != nil {
		return err
	}
	l.Info("Report written", zap.String("path", path))
	return nil
}
