package matrixify

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jszwec/csvutil"
)

// WriteFile writes rows as a UTF-8 import file. A run with zero
// products still produces a valid file with the header row.
func WriteFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create import file: %w", err)
	}

	if err := writeRows(file, rows); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to finalize import file: %w", err)
	}

	return nil
}

func writeRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(Row{}); err != nil {
		return fmt.Errorf("failed to write import header: %w", err)
	}

	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to write import row %s: %w", row.SKU, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush import file: %w", err)
	}

	return nil
}
