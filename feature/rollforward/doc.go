// Package rollforward verifies the accounting identity that opening balance
// plus period activity equals closing balance, account by account.
//
// # Per-account reconciliation
//
// The ledger is aggregated into signed net movements and the two trial
// balances into signed opening and closing balances. The three key sets are
// joined on their union: every account any source mentions appears in the
// output, with missing sides defaulting to 0. An account with ledger
// activity but no balance on either snapshot is a newly opened and closed
// account, which is valid and reported only when it does not net out. Only
// accounts whose rounded variance strictly exceeds the tolerance are
// emitted; an empty report is the meaningful "clean" outcome, not an error.
//
// # Grand-total cross-check
//
// CrossCheckTotals is the coarse companion gate: total ledger debits vs
// credits, the trial balance's own declared totals, and the two against
// each other. Four signed deltas and one pass/fail, all under the same
// tolerance. A trial balance without its sentinel-labelled total row cannot
// be cross-checked and fails with TotalRowNotFoundError.
package rollforward
