package handler

import (
	"github.com/gin-gonic/gin"

	"newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/domains/article/service"
	"newsforum-backend/internal/shared"
	"newsforum-backend/internal/shared/apperror"
	"newsforum-backend/internal/shared/response"
	"newsforum-backend/internal/shared/utils"
)

type ArticleHandler struct {
	articleService service.ServiceInterface
}

func NewArticleHandler(articleService service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ListArticles lists articles with optional sort_by, order and topic
// GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var query model.ListArticlesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Fail(c, apperror.BadRequestWrap(err))
		return
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), query)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"articles": articles})
}

// GetArticle returns one article with comment_count
// GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("article_id"))
	if !ok {
		response.BadRequest(c, "")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"article": article})
}

// VoteArticle applies inc_votes to the article
// PATCH /api/articles/:article_id
func (h *ArticleHandler) VoteArticle(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("article_id"))
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

	article, err := h.articleService.VoteArticle(c.Request.Context(), id, req.Delta())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, gin.H{"article": article})
}

// CreateArticle POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperror.BadRequestWrap(err))
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, gin.H{"article": article})
}
