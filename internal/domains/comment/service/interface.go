package service

import (
	"context"

	"newsforum-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	// ListComments returns the article's comments newest first; NotFound(Article) for unknown ids
	ListComments(ctx context.Context, articleID int) ([]*model.Comment, error)

	GetComment(ctx context.Context, id int) (*model.Comment, error)

	// CreateComment checks article then user before inserting
	CreateComment(ctx context.Context, articleID int, req model.CreateCommentRequest) (*model.Comment, error)

	VoteComment(ctx context.Context, id int, delta int) (*model.Comment, error)

	DeleteComment(ctx context.Context, id int) error
}
