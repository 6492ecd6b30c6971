package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest is the POST /api/articles/:article_id/comments body
type CreateCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Body, validation.Required.Error("body is required")),
	)
}
