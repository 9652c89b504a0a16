// Package tabular provides the raw table model and fuzzy column resolution
// shared by every loader and check in the application.
//
// Accounting exports rarely agree on header spelling: the same debit-balance
// column may appear as "차변잔액", "차변 잔액" or "DR_BAL" depending on the
// ERP that produced the file. The resolver contains that guessing in one
// place so the loaders and checks can work with canonical field names.
//
// # Resolution modes
//
// Two modes are provided:
//
//  1. Alias resolution (Schema.Resolve / FindColumn): each logical field
//     carries an ordered alias list; headers and aliases are folded through a
//     Normalizer before comparison. Alias order wins over header order.
//
//  2. Pattern resolution (ResolveBalanceColumns): two-tier trial balance
//     headers flatten into strings with embedded whitespace, where a plain
//     alias match cannot distinguish the "balance" column group from the
//     "total" (turnover) group. Four regular expressions classify headers
//     into the debit/credit × balance/total matrix instead.
//
// Resolution never panics and never errors per-field: optional fields are
// simply absent from the result, and required fields are collected into a
// single MissingColumnsError listing everything that is missing plus the
// headers that were actually present.
package tabular
