// Package reconcile implements the feed reconciliation engine.
//
// Given the three parsed feed tables and the persisted baseline, Build
// classifies every product and generates the bulk import rows:
//
//  1. Discontinued products become DELETE/archived, regardless of whether the
//     SKU is known. Discontinuation always wins over new/existing.
//  2. SKUs absent from the baseline become MERGE/active (create-or-merge) and
//     carry a resolved retail price plus a New-Import review tag.
//  3. Known SKUs become UPDATE/active with an empty price cell, so manually
//     adjusted live prices survive re-imports.
//
// # Purity
//
// Build is a pure function: no I/O, no clock, no ambient configuration. The
// run parameters arrive explicitly via Options, which makes every classifying
// decision reproducible in tests. The input baseline is cloned, never mutated.
//
// # Baseline Union
//
// The returned Plan carries the baseline to persist: the input set unioned
// with every non-discontinued SKU seen this run. Discontinued SKUs are never
// added, and existing members are never evicted.
//
// # Row Order
//
// Rows are generated in product feed order. The downstream import tool can be
// order sensitive when resolving duplicate handles, so the engine never
// reorders.
package reconcile
