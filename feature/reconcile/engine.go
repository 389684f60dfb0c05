package reconcile

import (
	"math"
	"strings"

	"toolbank-sync/feature/feed"
	"toolbank-sync/feature/matrixify"
)

// Marker tags attached to generated rows.
const (
	// TagSource identifies the feed on every product.
	TagSource = "Toolbank"
	// TagNewImport flags products first seen this run for manual review.
	TagNewImport = "New-Import"
)

// Build classifies every product in the feed against the baseline and
// produces the import rows plus the baseline set to persist.
//
// Classification precedence: a discontinued product is always a DELETE,
// even when its SKU was never seen before; otherwise an unknown SKU is
// a MERGE (create-or-merge) and a known one an UPDATE.
func Build(in Input, opts Options) *Plan {
	plan := &Plan{
		Rows:     make([]matrixify.Row, 0, len(in.Products)),
		Baseline: in.Baseline.Clone(),
	}

	for _, product := range in.Products {
		// Parsers drop keyless records already; guard anyway for
		// callers that assemble Input by hand.
		if product.SKU == "" {
			plan.Summary.Skipped++
			continue
		}

		isNew := !in.Baseline.Contains(product.SKU)
		plan.Rows = append(plan.Rows, buildRow(product, in, opts, isNew))

		switch {
		case product.Discontinued:
			plan.Summary.Discontinued++
		case isNew:
			plan.Summary.New++
		default:
			plan.Summary.Existing++
		}

		if !product.Discontinued {
			plan.Baseline.Add(product.SKU)
		}
	}

	plan.Summary.Total = len(plan.Rows)
	return plan
}

func buildRow(product feed.Product, in Input, opts Options, isNew bool) matrixify.Row {
	row := matrixify.Row{
		Handle:             Handle(product.Title, product.SKU),
		Title:              product.Title,
		BodyHTML:           product.Description,
		Vendor:             product.Brand,
		Type:               product.ClassB,
		Tags:               strings.Join(tags(product, isNew), ", "),
		SKU:                product.SKU,
		Grams:              Grams(product.WeightKG),
		InventoryTracker:   matrixify.InventoryTracker,
		InventoryPolicy:    matrixify.InventoryPolicy,
		FulfillmentService: matrixify.FulfillmentService,
		RequiresShipping:   "TRUE",
		Taxable:            "TRUE",
		Barcode:            product.Barcode,
		ImageSrc:           imageURL(product, opts),
		ImagePosition:      "1",
		InventoryQty:       in.Stock[product.SKU],
	}

	switch {
	case product.Discontinued:
		row.Command = matrixify.CommandDelete
		row.Status = matrixify.StatusArchived
		row.Published = "FALSE"
	case isNew:
		row.Command = matrixify.CommandMerge
		row.Status = matrixify.StatusActive
		row.Published = "TRUE"
		row.Price = price(product, in.Pricing[product.SKU])
	default:
		row.Command = matrixify.CommandUpdate
		row.Status = matrixify.StatusActive
		row.Published = "TRUE"
	}

	return row
}

// price resolves the retail price for a newly created product: the
// pricing table's RRP wins, the product table's list price is the
// fallback. Only new rows carry a price; every other row leaves the
// cell empty so the live price downstream is never overwritten.
func price(product feed.Product, pricing feed.Pricing) string {
	rrp := pricing.RRP
	if rrp.IsZero() {
		rrp = product.ListPrice
	}
	return rrp.StringFixed(2)
}

// tags assembles the ordered tag list: the classification names the
// supplier provides, the feed marker, and the review marker for
// products first seen this run.
func tags(product feed.Product, isNew bool) []string {
	tags := make([]string, 0, 5)
	for _, class := range []string{product.ClassA, product.ClassB, product.ClassC} {
		if class != "" {
			tags = append(tags, class)
		}
	}
	tags = append(tags, TagSource)
	if isNew {
		tags = append(tags, TagNewImport)
	}
	return tags
}

// imageURL builds the product image source, falling back to the SKU as
// filename stem when the feed carries no image reference.
func imageURL(product feed.Product, opts Options) string {
	ref := product.ImageRef
	if ref == "" {
		ref = product.SKU
	}
	return opts.ImageBaseURL + ref + opts.ImageExtension
}

// Grams converts the feed's kilogram weight to integer grams. Missing
// or negative weights become 0.
func Grams(kg float64) int {
	if kg <= 0 {
		return 0
	}
	return int(math.Round(kg * 1000))
}
