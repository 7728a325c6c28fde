package ingest

import (
	"strings"
)

// splitPageText turns the best-effort text of one PDF page into address
// candidates, one per non-blank line.
func splitPageText(text string) []string {
	lines := strings.Split(text, "\n")
	addresses := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		addresses = append(addresses, line)
	}

	return addresses
}
