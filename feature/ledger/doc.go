// Package ledger turns raw tabular sources into the typed record model the
// checks operate on: general ledger posting lines and trial balance account
// snapshots.
//
// # Coercion rules
//
// Identifier columns stay text so numeric-looking account codes keep their
// leading zeros. Amount cells are comma-stripped and parsed as decimals;
// absent or unparseable amounts default to 0. Date cells coerce through a
// set of known layouts; a value that matches none becomes the zero time and
// is silently excluded from date-dependent checks. The exception is the
// mandatory posting-date column: when every row of it fails, loading aborts.
//
// # Layout variants
//
// LoadGL admits SAP-style exports where a single signed column carries both
// sides: without a credit column, negative amounts split into the credit
// side. LoadTB resolves its amount columns through the pattern matrix in
// core/tabular (two-tier "balance"/"total" layouts) before falling back to
// plain alias matching, and lifts the sentinel-labelled grand-total row out
// of the account rows. Total-row cells parse strictly: defaulting a broken
// grand total to 0 would silently pass the cross-check.
package ledger
