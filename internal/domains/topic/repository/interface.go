package repository

import (
	"context"

	"newsforum-backend/internal/domains/topic/model"
)

// =====================================================
// TOPIC REPOSITORY INTERFACE
// =====================================================

type TopicRepository interface {
	// List returns every topic ordered by slug
	List(ctx context.Context) ([]*model.Topic, error)

	// GetBySlug returns the topic or apperror NotFound(Topic)
	GetBySlug(ctx context.Context, slug string) (*model.Topic, error)
}
