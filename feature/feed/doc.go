// Package feed parses the supplier's raw feed files into typed records.
//
// One sync run consumes three tables:
//  1. Pricing (CSV): trade and retail prices keyed by stock_no.
//  2. Products (XLSX or CSV): the full catalog export keyed by StockCode.
//  3. Availability (CSV): central stock counts keyed by stock_no.
//
// # Boundary Coercion
//
// All numeric cells pass through the parse-or-default helpers in core/utils at
// construction time, so downstream code only ever sees validated, typed data:
// malformed prices and weights become 0, fractional quantities are truncated,
// and rows without a SKU are dropped silently.
//
// The product table parse preserves feed order; the generated import file
// mirrors it row for row. Pricing and availability become lookup maps.
//
// Supplier exports are utf-8-sig encoded; every CSV reader strips the BOM
// before the header row is interpreted.
package feed
