package service

import (
	"context"

	"newsforum-backend/internal/domains/topic/model"
	"newsforum-backend/internal/domains/topic/repository"
	"newsforum-backend/internal/shared/apperror"
)

type topicService struct {
	topicRepo repository.TopicRepository
}

func NewTopicService(topicRepo repository.TopicRepository) ServiceInterface {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) ListTopics(ctx context.Context) ([]*model.Topic, error) {
	topics, err := s.topicRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(topics) == 0 {
		return nil, apperror.NotFoundMsg(apperror.EntityTopic, apperror.MsgNoTopics)
	}
	return topics, nil
}
