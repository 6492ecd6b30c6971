package utils

import (
	"strconv"
	"strings"
)

// JoinWithAnd joins WHERE clauses with AND
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// Placeholder returns the positional parameter for the n-th bound value ($1, $2, ...)
func Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
