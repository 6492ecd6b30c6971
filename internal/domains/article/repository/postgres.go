package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/shared/apperror"
)

type postgresArticleRepository struct {
	db database.DBTX
}

func NewPostgresArticleRepository(db database.DBTX) ArticleRepository {
	return &postgresArticleRepository{db: db}
}

func (r *postgresArticleRepository) List(ctx context.Context, params model.ListArticlesParams) ([]*model.ArticleSummary, error) {
	query, args := BuildListArticlesQuery(params)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]*model.ArticleSummary, 0)
	for rows.Next() {
		a := &model.ArticleSummary{}
		err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

func (r *postgresArticleRepository) GetByID(ctx context.Context, id int) (*model.Article, error) {
	a := &model.Article{}
	err := scanArticle(r.db.QueryRow(ctx, getArticleQuery, id), a, &a.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityArticle)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	return a, nil
}

func (r *postgresArticleRepository) IncrementVotes(ctx context.Context, id int, delta int) (*model.Article, error) {
	a := &model.Article{}
	err := scanArticle(r.db.QueryRow(ctx, incrementVotesQuery, delta, id), a, &a.CommentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityArticle)
		}
		return nil, fmt.Errorf("failed to update article votes: %w", err)
	}
	return a, nil
}

func (r *postgresArticleRepository) Create(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	a := &model.Article{}
	row := r.db.QueryRow(ctx, insertArticleQuery, req.Author, req.Title, req.Body, req.Topic, req.ImgURL())
	if err := scanArticle(row, a); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	a.CommentCount = 0
	return a, nil
}

// scanArticle reads articleColumns in order, followed by any extra targets
func scanArticle(row pgx.Row, a *model.Article, extra ...interface{}) error {
	dest := []interface{}{
		&a.ArticleID, &a.Author, &a.Title, &a.Body,
		&a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	}
	return row.Scan(append(dest, extra...)...)
}
