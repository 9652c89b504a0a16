// Package jet screens journal entries for the classic audit anomaly
// scenarios: suspicious description keywords, sensitive accounts, revenue
// booked against unusual contra accounts, entries keyed long after their
// posting date, rarely used accounts and preparers, weekend and holiday
// postings, repeated trailing digits, and round amounts.
//
// Each rule is a pure function over the parsed ledger; RunBattery fans the
// enabled rules out over goroutines and collects their hits in a stable
// scenario order. Disabling a rule yields an empty result, never an error,
// so one battery run always produces a full panel.
package jet
