package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// readTSV reads a tab-separated file with a single unnamed address column and
// returns one address per row. Rows with extra columns contribute only their
// first field; blank rows are dropped later by the queue insert.
func readTSV(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open TSV %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse TSV %s: %w", path, err)
	}

	addresses := make([]string, 0, len(records))
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		addresses = append(addresses, record[0])
	}

	return addresses, nil
}
