package model

// Topic is a category articles are filed under; slug is its key
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
