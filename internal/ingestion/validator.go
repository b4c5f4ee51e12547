package ingestion

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDocumentCount reads the leading integer of line; anything after the
// first whitespace-separated field is ignored.
func parseDocumentCount(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("document count is missing")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("document count %q is not an integer", fields[0])
	}
	return n, nil
}

// validateDocumentCount rejects negative counts and counts above limit. A limit
// of zero disables the upper bound.
func validateDocumentCount(n, limit int) error {
	if n < 0 {
		return fmt.Errorf("document count must not be negative, got %d", n)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("document count must be at most %d, got %d", limit, n)
	}
	return nil
}
