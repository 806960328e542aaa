package utils

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV writes a header row followed by data rows. Used by the portfolio
// export endpoint.
func WriteCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %v", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
