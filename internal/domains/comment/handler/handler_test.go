package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"newsforum-backend/internal/domains/comment/model"
	"newsforum-backend/internal/shared/apperror"
)

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) ListComments(ctx context.Context, articleID int) ([]*model.Comment, error) {
	args := m.Called(ctx, articleID)
	if v := args.Get(0); v != nil {
		return v.([]*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) GetComment(ctx context.Context, id int) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) CreateComment(ctx context.Context, articleID int, req model.CreateCommentRequest) (*model.Comment, error) {
	args := m.Called(ctx, articleID, req)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) VoteComment(ctx context.Context, id int, delta int) (*model.Comment, error) {
	args := m.Called(ctx, id, delta)
	if v := args.Get(0); v != nil {
		return v.(*model.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentService) DeleteComment(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc *mockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)

	r := gin.New()
	r.GET("/api/articles/:article_id/comments", h.ListComments)
	r.POST("/api/articles/:article_id/comments", h.CreateComment)
	r.GET("/api/comments/:comment_id", h.GetComment)
	r.PATCH("/api/comments/:comment_id", h.VoteComment)
	r.DELETE("/api/comments/:comment_id", h.DeleteComment)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListComments(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("ListComments", mock.Anything, 1).Return([]*model.Comment{{CommentID: 5, ArticleID: 1}}, nil)
	svc.On("ListComments", mock.Anything, 2).Return([]*model.Comment{}, nil)
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/api/articles/1/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comment_id":5`)

	w = do(r, http.MethodGet, "/api/articles/2/comments", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":[]`)

	w = do(r, http.MethodGet, "/api/articles/not-a-number/comments", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("CreateComment", mock.Anything, 1, model.CreateCommentRequest{Username: "butter_bridge", Body: "hi"}).
		Return(&model.Comment{CommentID: 19, ArticleID: 1, Author: "butter_bridge", Body: "hi"}, nil)
	svc.On("CreateComment", mock.Anything, 9999, mock.Anything).
		Return(nil, apperror.NotFound(apperror.EntityArticle))
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/api/articles/1/comments", `{"username":"butter_bridge","body":"hi"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"author":"butter_bridge"`)

	w = do(r, http.MethodPost, "/api/articles/9999/comments", `{"username":"butter_bridge","body":"hi"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Article not found")

	w = do(r, http.MethodPost, "/api/articles/1/comments", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVoteComment(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("VoteComment", mock.Anything, 1, -1).Return(&model.Comment{CommentID: 1, Votes: 15}, nil)
	r := setupRouter(svc)

	w := do(r, http.MethodPatch, "/api/comments/1", `{"inc_votes": -1}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"votes":15`)

	w = do(r, http.MethodPatch, "/api/comments/1", `{"votes": 1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteComment(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("DeleteComment", mock.Anything, 1).Return(nil).Once()
	svc.On("DeleteComment", mock.Anything, 1).Return(apperror.NotFound(apperror.EntityComment)).Once()
	r := setupRouter(svc)

	w := do(r, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, http.MethodDelete, "/api/comments/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Comment not found")

	w = do(r, http.MethodDelete, "/api/comments/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "DeleteComment", 2)
}

func TestGetComment(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("GetComment", mock.Anything, 3).Return(&model.Comment{CommentID: 3}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/api/comments/3", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comment_id":3`)
}
