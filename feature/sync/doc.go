// Package sync orchestrates a full Toolbank feed synchronization run.
//
// A run moves through a strict sequence:
//  1. Load the SKU baseline from disk (missing file means first run).
//  2. Fetch the pricing, product and availability tables from the
//     supplier endpoint (skipped with Options.Offline).
//  3. Parse the three tables into typed records.
//  4. Reconcile the feed against the baseline into a change plan.
//  5. Write the Matrixify import file, then persist the new baseline.
//  6. Optionally archive the run artifacts and record a ledger row.
//
// # Failure Semantics
//
// Fetch and parse failures abort the run before any file is written, so
// a broken feed can never corrupt the previous import file or baseline.
// The baseline is saved only after the import file, which keeps the two
// consistent if the run dies between steps. Archival and history are
// best-effort: their failures are logged and never fail a run that has
// already produced its output.
//
// # Components
//
//   - Service: Drives the pipeline and owns the step ordering.
//   - Options: Per-run switches (Offline, DryRun).
//   - Report: Run identifier, classification counts and output location.
package sync
