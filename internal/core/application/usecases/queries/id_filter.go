package queries

import (
	"strconv"
	"strings"
)

// parseIDFilter parses a comma-separated id list supplied by the caller.
// The filter is tolerant by contract: a malformed value anywhere in the list
// drops the whole filter (returns nil) so the caller gets the unfiltered page
// instead of an error.
func parseIDFilter(csv string) []int64 {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil
		}
		ids = append(ids, id)
	}

	return ids
}
