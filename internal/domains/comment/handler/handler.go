package handler

import (
	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/domains/comment/model"
	"newsforum-backend/internal/domains/comment/service"
	"newsforum-backend/internal/shared"
	"newsforum-backend/internal/shared/apperror"
	"newsforum-backend/internal/shared/response"
	"newsforum-backend/internal/shared/utils"
)

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments GET /api/articles/:article_id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	articleID, ok := utils.ParseID(c.Param("article_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), articleID)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"comments": comments})
}

// CreateComment POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	articleID, ok := utils.ParseID(c.Param("article_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.BadRequestWrap(err))
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, gin.H{"comment": comment})
}

// GetComment GET /api/comments/:comment_id
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("comment_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	comment, err := h.commentService.GetComment(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"comment": comment})
}

// VoteComment PATCH /api/comments/:comment_id
func (h *CommentHandler) VoteComment(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("comment_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	var req shared.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.BadRequestWrap(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.Fail(c, apperror.BadRequestWrap(err))
		return
	}

	comment, err := h.commentService.VoteComment(c.Request.Context(), id, req.Delta())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"comment": comment})
}

// DeleteComment DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("comment_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}

	response.NoContent(c)
}
