package feed

import (
	"github.com/shopspring/decimal"
)

// Product is one row of the supplier's product table, keyed by SKU.
// Records are built once per run from the feed and never mutated.
type Product struct {
	SKU           string
	Title         string
	Description   string
	Brand         string
	Barcode       string
	WeightKG      float64
	PartNumber    string
	ImageRef      string
	Discontinued  bool
	ListPrice     decimal.Decimal
	TradeDiscount decimal.Decimal
	ClassA        string
	ClassB        string
	ClassC        string
	PackQty       int
}

// Pricing is one row of the supplier's pricing table. A SKU without a
// pricing row is priced from the product table's list price instead.
type Pricing struct {
	SKU       string
	Price     decimal.Decimal
	RRP       decimal.Decimal
	NettPrice decimal.Decimal
	Promotion string
}
