package service

import (
	"context"
	"strings"

	"newsforum-backend/internal/domains/user/model"
	"newsforum-backend/internal/domains/user/repository"
	"newsforum-backend/internal/shared/apperror"
)

type ServiceInterface interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) ServiceInterface {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser rejects a blank username before querying
func (s *userService) GetUser(ctx context.Context, username string) (*model.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperror.BadRequest("")
	}
	return s.userRepo.GetByUsername(ctx, username)
}
