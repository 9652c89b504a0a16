package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ledger-audit/core/tabular"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

// Options controls how a source is sliced into header and data rows.
type Options struct {
	// HeaderRow is the 0-based index of the header row. Rows above it are
	// discarded (title rows, report banners).
	HeaderRow int

	// TwoRowHeader indicates a stacked two-tier header occupying HeaderRow
	// and HeaderRow+1. Spreadsheet sources only; delimited text always uses
	// a single header row and the flag is ignored there.
	TwoRowHeader bool
}

// UnsupportedFormatError is returned for file suffixes the loader does not
// recognize.
type UnsupportedFormatError struct {
	Name string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %q (expected .xlsx, .xlsm, .csv or .txt)", e.Ext, e.Name)
}

// LoadFile reads a tabular source from disk. The file suffix selects the
// format.
func LoadFile(path string, opts Options) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()
	return Load(f, filepath.Base(path), opts)
}

// Load reads a tabular source from r. name supplies the format hint (its
// suffix) and labels the resulting table for error messages.
func Load(r io.Reader, name string, opts Options) (*tabular.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".xlsx", ".xlsm":
		return loadSpreadsheet(r, name, opts)
	case ".csv", ".txt":
		return loadDelimited(r, name, opts)
	default:
		return nil, &UnsupportedFormatError{Name: name, Ext: ext}
	}
}

func loadSpreadsheet(r io.Reader, name string, opts Options) (*tabular.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %q: %w", name, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %q: %w", sheet, name, err)
	}
	return slice(rows, name, opts, opts.TwoRowHeader)
}

func loadDelimited(r io.Reader, name string, opts Options) (*tabular.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", name, err)
	}

	// Legacy Korean exports are not UTF-8. Try UTF-8 first, then re-decode
	// the same bytes as CP949/EUC-KR before giving up.
	if !utf8.Valid(data) {
		decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("%q is neither valid UTF-8 nor CP949: %w", name, err)
		}
		data = decoded
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", name, err)
	}
	// Two-tier headers are a spreadsheet layout; delimited TB sources carry
	// a single header row.
	return slice(rows, name, opts, false)
}

// slice cuts raw rows into headers and data according to the header offset,
// flattening a stacked two-tier header when requested.
func slice(rows [][]string, name string, opts Options, twoRow bool) (*tabular.Table, error) {
	headerRows := 1
	if twoRow {
		headerRows = 2
	}
	if opts.HeaderRow < 0 || opts.HeaderRow+headerRows > len(rows) {
		return nil, fmt.Errorf("header row %d out of range for %q (%d rows)", opts.HeaderRow, name, len(rows))
	}

	var headers []string
	if twoRow {
		headers = flattenHeader(rows[opts.HeaderRow], rows[opts.HeaderRow+1])
	} else {
		headers = trimAll(rows[opts.HeaderRow])
	}

	data := rows[opts.HeaderRow+headerRows:]
	out := make([][]string, len(data))
	for i, row := range data {
		out[i] = trimAll(row)
	}
	return &tabular.Table{Name: name, Headers: headers, Rows: out}, nil
}

// flattenHeader joins a two-tier header into one flat string per column.
// Merged top cells surface as blanks in following columns, so the last
// non-blank top value is carried forward; blank tiers are dropped from the
// join rather than producing placeholder text.
func flattenHeader(top, bottom []string) []string {
	width := len(top)
	if len(bottom) > width {
		width = len(bottom)
	}
	headers := make([]string, width)
	carry := ""
	for i := 0; i < width; i++ {
		t := cellAt(top, i)
		if t != "" {
			carry = t
		}
		b := cellAt(bottom, i)
		switch {
		case carry != "" && b != "":
			headers[i] = carry + " " + b
		case b != "":
			headers[i] = b
		default:
			headers[i] = carry
		}
	}
	return headers
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func trimAll(row []string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
