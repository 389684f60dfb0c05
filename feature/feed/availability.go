package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"toolbank-sync/core/utils"

	"github.com/jszwec/csvutil"
)

// availabilityRow mirrors the stock availability header.
type availabilityRow struct {
	StockNo string `csv:"stock_no"`
	CStock  string `csv:"cstock"`
}

// ParseAvailability reads central stock counts into a SKU-keyed map.
// Quantities can arrive fractional and are truncated to whole units;
// negative counts are clamped to 0.
func ParseAvailability(path string) (map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open availability table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(utils.NewBOMReader(file))
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability header: %w", err)
	}

	var rows []availabilityRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode availability table: %w", err)
	}

	stock := make(map[string]int, len(rows))
	for _, row := range rows {
		sku := strings.TrimSpace(row.StockNo)
		if sku == "" {
			continue
		}

		qty := utils.IntOrZero(row.CStock)
		if qty < 0 {
			qty = 0
		}
		stock[sku] = qty
	}

	return stock, nil
}
