package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newsforum-backend/internal/domains/user/model"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/shared/apperror"
)

type postgresUserRepository struct {
	db database.DBTX
}

func NewPostgresUserRepository(db database.DBTX) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT username, name, COALESCE(avatar_url, '') FROM users ORDER BY username`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		u := &model.User{}
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT username, name, COALESCE(avatar_url, '') FROM users WHERE username = $1`

	u := &model.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityUser)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
