package reconcile

import (
	"toolbank-sync/feature/baseline"
	"toolbank-sync/feature/feed"
	"toolbank-sync/feature/matrixify"
)

// Input bundles the three parsed feed tables and the current baseline.
type Input struct {
	// Products is the full product table in feed order.
	Products []feed.Product

	// Pricing maps SKU to the pricing row, when one exists.
	Pricing map[string]feed.Pricing

	// Stock maps SKU to the central stock count, when one exists.
	Stock map[string]int

	// Baseline is the set of SKUs known from previous runs.
	Baseline baseline.Set
}

// Options carries the engine's fixed run parameters. The engine never
// reads ambient configuration; everything it needs arrives here.
type Options struct {
	// ImageBaseURL prefixes every generated image source URL.
	ImageBaseURL string

	// ImageExtension is appended to the image reference (e.g. ".jpg").
	ImageExtension string
}

// Plan is the outcome of one reconciliation pass.
type Plan struct {
	// Rows are the generated import rows, one per product, in feed order.
	Rows []matrixify.Row

	// Baseline is the updated SKU set, to be persisted only after the
	// import file has been written.
	Baseline baseline.Set

	// Summary provides aggregate counts for reporting.
	Summary Summary
}

// Summary provides aggregate statistics for a reconciliation pass.
type Summary struct {
	// Total is the number of products that produced a row.
	Total int

	// New counts active products absent from the baseline.
	New int

	// Existing counts active products already present in the baseline.
	Existing int

	// Discontinued counts products flagged discontinued by the supplier.
	Discontinued int

	// Skipped counts records dropped for having no SKU.
	Skipped int
}
