package feed

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"toolbank-sync/core/utils"

	"github.com/jszwec/csvutil"
)

// pricingRow mirrors the pricing table header. Cells are read as text;
// numeric coercion happens in newPricing.
type pricingRow struct {
	StockNo     string `csv:"stock_no"`
	Price       string `csv:"price"`
	RRP         string `csv:"rrp"`
	SellDis     string `csv:"sell_dis_1"`
	NettPrice   string `csv:"nett_price"`
	RebateFlag  string `csv:"rebate_flg"`
	PromNo      string `csv:"prom_no"`
	PromEndDate string `csv:"prom_end_date"`
}

// ParsePricing reads the pricing table into a SKU-keyed map.
// Rows without a SKU are dropped silently.
func ParsePricing(path string) (map[string]Pricing, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pricing table: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(utils.NewBOMReader(file))
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing header: %w", err)
	}

	var rows []pricingRow
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode pricing table: %w", err)
	}

	pricing := make(map[string]Pricing, len(rows))
	for _, row := range rows {
		p := newPricing(row)
		if p.SKU == "" {
			continue
		}
		pricing[p.SKU] = p
	}

	return pricing, nil
}

func newPricing(row pricingRow) Pricing {
	return Pricing{
		SKU:       strings.TrimSpace(row.StockNo),
		Price:     utils.DecimalOrZero(row.Price),
		RRP:       utils.DecimalOrZero(row.RRP),
		NettPrice: utils.DecimalOrZero(row.NettPrice),
		Promotion: strings.TrimSpace(row.PromNo),
	}
}
