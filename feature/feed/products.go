package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"toolbank-sync/core/utils"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

// productRow mirrors the product table header. The same shape is fed
// from both the CSV and the XLSX variant of the export.
type productRow struct {
	StockCode        string `csv:"StockCode"`
	ProductName      string `csv:"Product Name"`
	Description      string `csv:"ProductDescription"`
	BrandName        string `csv:"Brand_Name"`
	Barcode          string `csv:"RetailerBarcode"`
	Weight           string `csv:"Weight"`
	BrandPartNumber  string `csv:"BrandPartNumber"`
	ImageRef         string `csv:"ImageRef"`
	DiscontinuedFlag string `csv:"DiscontinuedFlag"`
	CurrentListPrice string `csv:"CurrentListPrice"`
	TradeDiscount    string `csv:"TradeDiscount"`
	ClassAName       string `csv:"ClassAName"`
	ClassBName       string `csv:"ClassBName"`
	ClassCName       string `csv:"ClassCName"`
	PackQty          string `csv:"PackQTY"`
}

// ParseProducts reads the product table, preserving feed order.
// The supplier ships the table as .xlsx with an occasional .csv
// fallback; the file extension picks the decoder.
func ParseProducts(path string) ([]Product, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return parseProductsXLSX(path)
	}
	return parseProductsCSV(path)
}

func parseProductsCSV(path string) ([]Product, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(utils.NewBOMReader(file))
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read product header: %w", err)
	}

	var rows []productRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode product table: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		p := newProduct(row)
		if p.SKU == "" {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

func parseProductsXLSX(path string) ([]Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open product workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("product workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read product sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("product sheet %s is empty", sheets[0])
	}

	// Map header names to column indices; rows can be ragged so every
	// cell access goes through the bounds-checked helper.
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	products := make([]Product, 0, len(rows)-1)
	for _, row := range rows[1:] {
		p := newProduct(productRow{
			StockCode:        cell(row, "StockCode"),
			ProductName:      cell(row, "Product Name"),
			Description:      cell(row, "ProductDescription"),
			BrandName:        cell(row, "Brand_Name"),
			Barcode:          cell(row, "RetailerBarcode"),
			Weight:           cell(row, "Weight"),
			BrandPartNumber:  cell(row, "BrandPartNumber"),
			ImageRef:         cell(row, "ImageRef"),
			DiscontinuedFlag: cell(row, "DiscontinuedFlag"),
			CurrentListPrice: cell(row, "CurrentListPrice"),
			TradeDiscount:    cell(row, "TradeDiscount"),
			ClassAName:       cell(row, "ClassAName"),
			ClassBName:       cell(row, "ClassBName"),
			ClassCName:       cell(row, "ClassCName"),
			PackQty:          cell(row, "PackQTY"),
		})
		if p.SKU == "" {
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

func newProduct(row productRow) Product {
	return Product{
		SKU:           strings.TrimSpace(row.StockCode),
		Title:         strings.TrimSpace(row.ProductName),
		Description:   row.Description,
		Brand:         strings.TrimSpace(row.BrandName),
		Barcode:       strings.TrimSpace(row.Barcode),
		WeightKG:      utils.FloatOrZero(row.Weight),
		PartNumber:    strings.TrimSpace(row.BrandPartNumber),
		ImageRef:      strings.TrimSpace(row.ImageRef),
		Discontinued:  utils.FlagSet(row.DiscontinuedFlag),
		ListPrice:     utils.DecimalOrZero(row.CurrentListPrice),
		TradeDiscount: utils.DecimalOrZero(row.TradeDiscount),
		ClassA:        strings.TrimSpace(row.ClassAName),
		ClassB:        strings.TrimSpace(row.ClassBName),
		ClassC:        strings.TrimSpace(row.ClassCName),
		PackQty:       utils.IntOrZero(row.PackQty),
	}
}
