package model

import (
	"sort"
	"strings"
)

// =====================================================
// SORT RULES
// =====================================================
// Column names and ASC/DESC cannot be bound as query parameters, so the only
// values that ever reach the ORDER BY clause are the identifiers listed here.
// Callers pass symbolic keys; the SQL text is resolved inside this package.

const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

// SortColumn is a resolved, trusted ORDER BY identifier.
// The zero value means the default (created_at).
type SortColumn struct {
	key        string
	identifier string
}

// SortOrder is a resolved ASC/DESC keyword. The zero value means DESC.
type SortOrder struct {
	keyword string
}

var sortColumns = map[string]SortColumn{
	"article_id":      {"article_id", "articles.article_id"},
	"title":           {"title", "articles.title"},
	"topic":           {"topic", "articles.topic"},
	"author":          {"author", "articles.author"},
	"body":            {"body", "articles.body"},
	"created_at":      {"created_at", "articles.created_at"},
	"votes":           {"votes", "articles.votes"},
	"article_img_url": {"article_img_url", "articles.article_img_url"},
	"comment_count":   {"comment_count", "comment_count"},
}

var sortOrders = map[string]SortOrder{
	"asc":  {"ASC"},
	"desc": {"DESC"},
}

// IsValidSortColumn reports whether name is a whitelisted sort key (case-sensitive)
func IsValidSortColumn(name string) bool {
	_, ok := sortColumns[name]
	return ok
}

// IsValidOrder reports whether value is asc or desc, ignoring case
func IsValidOrder(value string) bool {
	_, ok := sortOrders[strings.ToLower(value)]
	return ok
}

// ParseSortColumn resolves a sort key. Empty input yields the default column.
func ParseSortColumn(name string) (SortColumn, bool) {
	if name == "" {
		return sortColumns[DefaultSortBy], true
	}
	col, ok := sortColumns[name]
	return col, ok
}

// ParseSortOrder resolves an order keyword. Empty input yields DESC.
func ParseSortOrder(value string) (SortOrder, bool) {
	if value == "" {
		return sortOrders[DefaultOrder], true
	}
	order, ok := sortOrders[strings.ToLower(value)]
	return order, ok
}

// SortKeys lists the whitelisted keys in alphabetical order
func SortKeys() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c SortColumn) Key() string {
	if c.key == "" {
		return DefaultSortBy
	}
	return c.key
}

// Identifier is the SQL text for ORDER BY
func (c SortColumn) Identifier() string {
	if c.identifier == "" {
		return sortColumns[DefaultSortBy].identifier
	}
	return c.identifier
}

// IsPrimaryKey reports whether ordering is already unique (no tie-break needed)
func (c SortColumn) IsPrimaryKey() bool {
	return c.Key() == "article_id"
}

// Keyword is the SQL text for the sort direction
func (o SortOrder) Keyword() string {
	if o.keyword == "" {
		return "DESC"
	}
	return o.keyword
}
