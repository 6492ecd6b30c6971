package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"newsforum-backend/internal/domains/comment/model"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/internal/shared/apperror"
)

const commentColumns = `comment_id, body, article_id, author, votes, created_at`

type postgresCommentRepository struct {
	db database.DBTX
}

func NewPostgresCommentRepository(db database.DBTX) CommentRepository {
	return &postgresCommentRepository{db: db}
}

func (r *postgresCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]*model.Comment, error) {
	query := `SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`

	rows, err := r.db.Query(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		cm := &model.Comment{}
		if err := scanComment(rows, cm); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, cm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id int) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE comment_id = $1`

	cm := &model.Comment{}
	if err := scanComment(r.db.QueryRow(ctx, query, id), cm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityComment)
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return cm, nil
}

func (r *postgresCommentRepository) Create(ctx context.Context, articleID int, author, body string) (*model.Comment, error) {
	query := `INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	cm := &model.Comment{}
	if err := scanComment(r.db.QueryRow(ctx, query, articleID, author, body), cm); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return cm, nil
}

func (r *postgresCommentRepository) IncrementVotes(ctx context.Context, id int, delta int) (*model.Comment, error) {
	query := `UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns

	cm := &model.Comment{}
	if err := scanComment(r.db.QueryRow(ctx, query, delta, id), cm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(apperror.EntityComment)
		}
		return nil, fmt.Errorf("failed to update comment votes: %w", err)
	}
	return cm, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound(apperror.EntityComment)
	}
	return nil
}

func scanComment(row pgx.Row, cm *model.Comment) error {
	return row.Scan(&cm.CommentID, &cm.Body, &cm.ArticleID, &cm.Author, &cm.Votes, &cm.CreatedAt)
}
