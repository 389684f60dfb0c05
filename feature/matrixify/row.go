package matrixify

// Commands understood by the bulk import tool.
const (
	CommandMerge  = "MERGE"
	CommandUpdate = "UPDATE"
	CommandDelete = "DELETE"
)

// Product statuses on the storefront.
const (
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Fixed variant values shared by every generated row.
const (
	InventoryTracker   = "shopify"
	InventoryPolicy    = "deny"
	FulfillmentService = "manual"
)

// Row is one line of the generated import file. Column order is part of
// the contract with the import tool and must not change.
//
// Variant Price is a string, not a number: an empty cell is the
// sentinel for "leave the live price untouched" and must never
// serialize as 0.
type Row struct {
	Command            string `csv:"Command"`
	Handle             string `csv:"Handle"`
	Title              string `csv:"Title"`
	BodyHTML           string `csv:"Body (HTML)"`
	Vendor             string `csv:"Vendor"`
	Type               string `csv:"Type"`
	Tags               string `csv:"Tags"`
	Published          string `csv:"Published"`
	SKU                string `csv:"Variant SKU"`
	Grams              int    `csv:"Variant Grams"`
	InventoryTracker   string `csv:"Variant Inventory Tracker"`
	InventoryPolicy    string `csv:"Variant Inventory Policy"`
	FulfillmentService string `csv:"Variant Fulfillment Service"`
	Price              string `csv:"Variant Price"`
	CompareAtPrice     string `csv:"Variant Compare At Price"`
	RequiresShipping   string `csv:"Variant Requires Shipping"`
	Taxable            string `csv:"Variant Taxable"`
	Barcode            string `csv:"Variant Barcode"`
	ImageSrc           string `csv:"Image Src"`
	ImagePosition      string `csv:"Image Position"`
	Status             string `csv:"Status"`
	InventoryQty       int    `csv:"Variant Inventory Qty"`
}
