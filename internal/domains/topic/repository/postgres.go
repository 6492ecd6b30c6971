package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newsforum-backend/internal/domains/topic/model"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/shared/apperror"
)

type postgresTopicRepository struct {
	db database.DBTX
}

func NewPostgresTopicRepository(db database.DBTX) TopicRepository {
	return &postgresTopicRepository{db: db}
}

// =====================================================
// LIST
// =====================================================

func (r *postgresTopicRepository) List(ctx context.Context) ([]*model.Topic, error) {
	query := `SELECT slug, description FROM topics ORDER BY slug`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]*model.Topic, 0)
	for rows.Next() {
		t := &model.Topic{}
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topics: %w", err)
	}

	return topics, nil
}

// =====================================================
// GET BY SLUG
// =====================================================

func (r *postgresTopicRepository) GetBySlug(ctx context.Context, slug string) (*model.Topic, error) {
	query := `SELECT slug, description FROM topics WHERE slug = $1`

	t := &model.Topic{}
	err := r.db.QueryRow(ctx, query, slug).Scan(&t.Slug, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityTopic)
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	return t, nil
}
