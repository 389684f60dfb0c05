// Package history keeps an optional MySQL ledger of sync run outcomes.
// One row per real run, succeeded or failed: timing, classification
// counts and the output path. The ledger is best effort; a sync run
// never fails because the database is unreachable.
package history
