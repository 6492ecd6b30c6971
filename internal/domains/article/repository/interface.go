package repository

import (
	"context"

	"newsforum-backend/internal/domains/article/model"
)

// =====================================================
// ARTICLE REPOSITORY INTERFACE
// =====================================================

type ArticleRepository interface {
	// List returns article summaries filtered and ordered by params
	List(ctx context.Context, params model.ListArticlesParams) ([]*model.ArticleSummary, error)

	// GetByID returns the article with its comment count or apperror NotFound(Article)
	GetByID(ctx context.Context, id int) (*model.Article, error)

	// IncrementVotes adds delta to votes in one statement and returns the updated row
	IncrementVotes(ctx context.Context, id int, delta int) (*model.Article, error)

	// Create inserts an article; comment_count of the result is always 0
	Create(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error)
}
