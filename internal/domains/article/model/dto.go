package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// LIST QUERY
// =====================================================

// ListArticlesQuery is bound from GET /api/articles query parameters
type ListArticlesQuery struct {
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
	Topic  string `form:"topic"`
}

// ListArticlesParams is a validated list request ready for the query builder
type ListArticlesParams struct {
	SortBy SortColumn
	Order  SortOrder
	Topic  string // empty = all topics
}

var errInvalidSortBy = errors.New("sort_by is not a sortable column")
var errInvalidOrder = errors.New("order must be asc or desc")

func (q ListArticlesQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.SortBy, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if s != "" && !IsValidSortColumn(s) {
				return errInvalidSortBy
			}
			return nil
		})),
		validation.Field(&q.Order, validation.By(func(value interface{}) error {
			s, _ := value.(string)
			if s != "" && !IsValidOrder(s) {
				return errInvalidOrder
			}
			return nil
		})),
	)
}

// Resolve validates the query and maps it onto trusted sort identifiers
func (q ListArticlesQuery) Resolve() (ListArticlesParams, error) {
	if err := q.Validate(); err != nil {
		return ListArticlesParams{}, err
	}

	// Validate guarantees both lookups succeed
	col, _ := ParseSortColumn(q.SortBy)
	order, _ := ParseSortOrder(q.Order)

	return ListArticlesParams{
		SortBy: col,
		Order:  order,
		Topic:  q.Topic,
	}, nil
}

// =====================================================
// CREATE
// =====================================================

// CreateArticleRequest is the POST /api/articles body.
// Text fields and article_img_url are stored exactly as sent.
type CreateArticleRequest struct {
	Author        string  `json:"author"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
		validation.Field(&r.Topic, validation.Required.Error("topic is required")),
	)
}

// ImgURL returns the supplied image URL, even an empty one, or the default placeholder when absent
func (r CreateArticleRequest) ImgURL() string {
	if r.ArticleImgURL == nil {
		return DefaultArticleImgURL
	}
	return *r.ArticleImgURL
}
