package repository

import (
	"context"

	"newsforum-backend/internal/domains/user/model"
)

// =====================================================
// USER REPOSITORY INTERFACE
// =====================================================

type UserRepository interface {
	// List returns every user ordered by username
	List(ctx context.Context) ([]*model.User, error)

	// GetByUsername returns the user or apperror NotFound(User)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
