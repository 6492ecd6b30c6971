package existence

import (
	"context"

	articleModel "newsforum-backend/internal/domains/article/model"
	commentModel "newsforum-backend/internal/domains/comment/model"
	topicModel "newsforum-backend/internal/domains/topic/model"
	userModel "newsforum-backend/internal/domains/user/model"
	"newsforum-backend/internal/shared/apperror"
)

// Lookups the resolver needs. The postgres repositories of each domain satisfy them.
type (
	ArticleFinder interface {
		GetByID(ctx context.Context, id int) (*articleModel.Article, error)
	}
	UserFinder interface {
		GetByUsername(ctx context.Context, username string) (*userModel.User, error)
	}
	TopicFinder interface {
		GetBySlug(ctx context.Context, slug string) (*topicModel.Topic, error)
	}
	CommentFinder interface {
		GetByID(ctx context.Context, id int) (*commentModel.Comment, error)
	}
)

// Resolver answers "does this entity exist?" with the entity itself or a
// NotFound error naming the entity kind.
type Resolver struct {
	articles ArticleFinder
	users    UserFinder
	topics   TopicFinder
	comments CommentFinder
}

func NewResolver(articles ArticleFinder, users UserFinder, topics TopicFinder, comments CommentFinder) *Resolver {
	return &Resolver{
		articles: articles,
		users:    users,
		topics:   topics,
		comments: comments,
	}
}

func (r *Resolver) Article(ctx context.Context, id int) (*articleModel.Article, error) {
	a, err := r.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound(apperror.EntityArticle)
	}
	return a, nil
}

func (r *Resolver) User(ctx context.Context, username string) (*userModel.User, error) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound(apperror.EntityUser)
	}
	return u, nil
}

func (r *Resolver) Topic(ctx context.Context, slug string) (*topicModel.Topic, error) {
	t, err := r.topics.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound(apperror.EntityTopic)
	}
	return t, nil
}

func (r *Resolver) Comment(ctx context.Context, id int) (*commentModel.Comment, error) {
	cm, err := r.comments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cm == nil {
		return nil, apperror.NotFound(apperror.EntityComment)
	}
	return cm, nil
}

// =====================================================
// CHECKS
// =====================================================

func (r *Resolver) ArticleExists(id int) Check {
	return func(ctx context.Context) error {
		_, err := r.Article(ctx, id)
		return err
	}
}

func (r *Resolver) UserExists(username string) Check {
	return func(ctx context.Context) error {
		_, err := r.User(ctx, username)
		return err
	}
}

func (r *Resolver) TopicExists(slug string) Check {
	return func(ctx context.Context) error {
		_, err := r.Topic(ctx, slug)
		return err
	}
}

func (r *Resolver) CommentExists(id int) Check {
	return func(ctx context.Context) error {
		_, err := r.Comment(ctx, id)
		return err
	}
}
