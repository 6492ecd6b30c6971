package service

import (
	"context"

	"newsforum-backend/internal/domains/article/model"
)

type ServiceInterface interface {
	// ListArticles validates sort/order, checks the topic filter exists, then lists
	ListArticles(ctx context.Context, query model.ListArticlesQuery) ([]*model.ArticleSummary, error)

	GetArticle(ctx context.Context, id int) (*model.Article, error)

	// VoteArticle adds delta to the article's votes (delta may be negative or zero)
	VoteArticle(ctx context.Context, id int, delta int) (*model.Article, error)

	// CreateArticle checks author then topic before inserting
	CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error)
}
