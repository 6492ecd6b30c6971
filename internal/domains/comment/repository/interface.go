package repository

import (
	"context"

	"newsforum-backend/internal/domains/comment/model"
)

type CommentRepository interface {
	// ListByArticle returns the article's comments, newest first
	ListByArticle(ctx context.Context, articleID int) ([]*model.Comment, error)

	// GetByID returns the comment or apperror NotFound(Comment)
	GetByID(ctx context.Context, id int) (*model.Comment, error)

	Create(ctx context.Context, articleID int, author, body string) (*model.Comment, error)

	// IncrementVotes adds delta in one statement and returns the updated row
	IncrementVotes(ctx context.Context, id int, delta int) (*model.Comment, error)

	// Delete removes the comment; zero affected rows is NotFound(Comment)
	Delete(ctx context.Context, id int) error
}
