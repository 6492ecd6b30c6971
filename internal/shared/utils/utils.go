package utils

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer path id ("article_id", "comment_id").
// ok is false for anything that is not a base-10 integer >= 1.
func ParseID(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
