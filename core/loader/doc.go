// Package loader materializes spreadsheet and delimited-text sources into
// tabular.Table values.
//
// # Formats
//
// The file suffix selects the format: .xlsx/.xlsm are read through excelize
// (first sheet only), .csv/.txt through encoding/csv. Anything else fails
// with UnsupportedFormatError.
//
// # Encoding fallback
//
// Delimited exports from legacy Korean ERPs arrive in CP949. The loader
// tries UTF-8 first and, when the bytes are not valid UTF-8, re-decodes the
// same buffer as EUC-KR before failing. This is a retry policy, not an error
// class: only a double failure surfaces to the caller.
//
// # Header slicing
//
// The header row index is caller-specified (0-based); rows above it are
// report banners and are discarded. Trial balance spreadsheets may stack a
// two-tier header ("차 변" merged over "잔 액"/"합 계"); with
// Options.TwoRowHeader the two tiers are flattened into one header string
// per column, carrying merged top cells forward and dropping blank tiers.
// Delimited sources always use a single header row.
//
// All header and data cells are whitespace-trimmed. Typed coercion (dates,
// decimals, code columns) is the consumer's job; see feature/ledger.
package loader
