package service

import (
	"context"

	"newsforum-backend/internal/domains/topic/model"
)

type ServiceInterface interface {
	// ListTopics returns all topics; NotFound when there are none
	ListTopics(ctx context.Context) ([]*model.Topic, error)
}
