package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/domains/article/repository"
	"newsforum-backend/internal/domains/existence"
	"newsforum-backend/internal/shared/apperror"
)

type articleService struct {
	articleRepo repository.ArticleRepository
	resolver    *existence.Resolver
}

func NewArticleService(articleRepo repository.ArticleRepository, resolver *existence.Resolver) ServiceInterface {
	return &articleService{
		articleRepo: articleRepo,
		resolver:    resolver,
	}
}

func (s *articleService) ListArticles(ctx context.Context, query model.ListArticlesQuery) ([]*model.ArticleSummary, error) {
	params, err := query.Resolve()
	if err != nil {
		return nil, apperror.BadRequestWrap(err)
	}

	// Unknown topic is 404; a known topic without articles is an empty list
	if params.Topic != "" {
		if err := existence.Run(ctx, s.resolver.TopicExists(params.Topic)); err != nil {
			return nil, err
		}
	}

	return s.articleRepo.List(ctx, params)
}

func (s *articleService) GetArticle(ctx context.Context, id int) (*model.Article, error) {
	return s.resolver.Article(ctx, id)
}

func (s *articleService) VoteArticle(ctx context.Context, id int, delta int) (*model.Article, error) {
	return s.articleRepo.IncrementVotes(ctx, id, delta)
}

func (s *articleService) CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWrap(err)
	}

	err := existence.Run(ctx,
		s.resolver.UserExists(req.Author),
		s.resolver.TopicExists(req.Topic),
	)
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("article_id", article.ArticleID).
		Str("author", article.Author).
		Str("topic", article.Topic).
		Msg("Article created")

	return article, nil
}
