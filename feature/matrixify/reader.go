package matrixify

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"toolbank-sync/core/utils"

	"github.com/jszwec/csvutil"
)

// ReadSKUs extracts the Variant SKU column from an existing import
// file. Used by baseline seeding to bootstrap the known-SKU set from a
// previous export, so a first run against a populated store does not
// classify the whole catalog as new.
func ReadSKUs(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(utils.NewBOMReader(file))
	reader.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read import header: %w", err)
	}

	var rows []struct {
		SKU string `csv:"Variant SKU"`
	}
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode import file: %w", err)
	}

	skus := make([]string, 0, len(rows))
	for _, row := range rows {
		if sku := strings.TrimSpace(row.SKU); sku != "" {
			skus = append(skus, sku)
		}
	}

	return skus, nil
}
