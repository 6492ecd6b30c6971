package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"newsforum-backend/internal/domains/comment/model"
	"newsforum-backend/internal/domains/comment/repository"
	"newsforum-backend/internal/domains/existence"
	"newsforum-backend/internal/shared/apperror"
)

type commentService struct {
	commentRepo repository.CommentRepository
	resolver    *existence.Resolver
}

func NewCommentService(commentRepo repository.CommentRepository, resolver *existence.Resolver) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
		resolver:    resolver,
	}
}

func (s *commentService) ListComments(ctx context.Context, articleID int) ([]*model.Comment, error) {
	if err := existence.Run(ctx, s.resolver.ArticleExists(articleID)); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByArticle(ctx, articleID)
}

func (s *commentService) GetComment(ctx context.Context, id int) (*model.Comment, error) {
	return s.resolver.Comment(ctx, id)
}

func (s *commentService) CreateComment(ctx context.Context, articleID int, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.BadRequestWrap(err)
	}

	err := existence.Run(ctx,
		s.resolver.ArticleExists(articleID),
		s.resolver.UserExists(req.Username),
	)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, articleID, req.Username, req.Body)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("comment_id", comment.CommentID).
		Int("article_id", articleID).
		Str("author", comment.Author).
		Msg("Comment created")

	return comment, nil
}

func (s *commentService) VoteComment(ctx context.Context, id int, delta int) (*model.Comment, error) {
	return s.commentRepo.IncrementVotes(ctx, id, delta)
}

func (s *commentService) DeleteComment(ctx context.Context, id int) error {
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
