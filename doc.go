// Package cashflow provides the types and the projection engine behind a
// personal cashflow planner. It keeps a small ledger of financial facts and
// answers one question: what will the account balance look like over the
// coming weeks?
//
// The ledger holds three kinds of records:
//   - Recurring rules: amounts applied on a fixed day of every month, like a
//     salary or a subscription.
//   - One-time entries: single dated amounts, like a planned transfer.
//   - Balance snapshots: the observed account balance on a given date.
//
// A projection starts from the latest snapshot, reconciles everything that
// already happened up to the anchor date into a starting balance, then
// expands recurring rules and one-time entries through the horizon with a
// running balance on every row.
//
// Data persistence uses a human-readable JSONL file, one record per line,
// written atomically and in canonical order so the file diffs well under
// version control.
//
// This package serves as the foundational logic for the `cf` command-line
// tool.
package cashflow
