package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/shared/apperror"
)

type mockArticleService struct {
	mock.Mock
}

func (m *mockArticleService) ListArticles(ctx context.Context, query model.ListArticlesQuery) ([]*model.ArticleSummary, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*model.ArticleSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleService) GetArticle(ctx context.Context, id int) (*model.Article, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleService) VoteArticle(ctx context.Context, id int, delta int) (*model.Article, error) {
	args := m.Called(ctx, id, delta)
	if v := args.Get(0); v != nil {
		return v.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockArticleService) CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*model.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupRouter(svc *mockArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArticleHandler(svc)

	r := gin.New()
	r.GET("/api/articles", h.ListArticles)
	r.POST("/api/articles", h.CreateArticle)
	r.GET("/api/articles/:article_id", h.GetArticle)
	r.PATCH("/api/articles/:article_id", h.VoteArticle)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestListArticles_BindsQuery(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("ListArticles", mock.Anything, model.ListArticlesQuery{SortBy: "votes", Order: "asc", Topic: "cats"}).
		Return([]*model.ArticleSummary{{ArticleID: 5, Topic: "cats"}}, nil)

	w, env := do(t, setupRouter(svc), http.MethodGet, "/api/articles?sort_by=votes&order=asc&topic=cats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data["articles"]), `"article_id":5`)
}

func TestListArticles_BadSort(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("ListArticles", mock.Anything, mock.Anything).Return(nil, apperror.BadRequest(""))

	w, env := do(t, setupRouter(svc), http.MethodGet, "/api/articles?sort_by=banana", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Bad request", env.Error.Message)
}

func TestGetArticle_InvalidID(t *testing.T) {
	svc := new(mockArticleService)
	r := setupRouter(svc)

	for _, path := range []string{"/api/articles/abc", "/api/articles/0", "/api/articles/-4"} {
		w, env := do(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Bad request", env.Error.Message)
	}
	svc.AssertNotCalled(t, "GetArticle", mock.Anything, mock.Anything)
}

func TestGetArticle_NotFound(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("GetArticle", mock.Anything, 9999).Return(nil, apperror.NotFound(apperror.EntityArticle))

	w, env := do(t, setupRouter(svc), http.MethodGet, "/api/articles/9999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
	assert.Equal(t, "Article not found", env.Error.Message)
}

func TestGetArticle_OK(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("GetArticle", mock.Anything, 1).Return(&model.Article{ArticleID: 1, Votes: 100, CommentCount: 11}, nil)

	w, env := do(t, setupRouter(svc), http.MethodGet, "/api/articles/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var a model.Article
	require.NoError(t, json.Unmarshal(env.Data["article"], &a))
	assert.Equal(t, 100, a.Votes)
	assert.Equal(t, 11, a.CommentCount)
}

func TestVoteArticle(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("VoteArticle", mock.Anything, 1, 5).Return(&model.Article{ArticleID: 1, Votes: 105}, nil)
	r := setupRouter(svc)

	w, env := do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes": 5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data["article"]), `"votes":105`)

	for _, body := range []string{`{}`, `{"inc_votes": "cat"}`, `not json`} {
		w, _ = do(t, r, http.MethodPatch, "/api/articles/1", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	svc.AssertNumberOfCalls(t, "VoteArticle", 1)
}

func TestCreateArticle(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("CreateArticle", mock.Anything, mock.MatchedBy(func(r model.CreateArticleRequest) bool {
		return r.Author == "butter_bridge" && r.ArticleImgURL == nil
	})).Return(&model.Article{ArticleID: 14, ArticleImgURL: model.DefaultArticleImgURL}, nil)

	w, env := do(t, setupRouter(svc), http.MethodPost, "/api/articles",
		`{"author":"butter_bridge","title":"t","body":"b","topic":"mitch"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, string(env.Data["article"]), `"comment_count":0`)
}

func TestCreateArticle_UnknownTopic(t *testing.T) {
	svc := new(mockArticleService)
	svc.On("CreateArticle", mock.Anything, mock.Anything).Return(nil, apperror.NotFound(apperror.EntityTopic))

	w, env := do(t, setupRouter(svc), http.MethodPost, "/api/articles",
		`{"author":"butter_bridge","title":"t","body":"b","topic":"dogs"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Topic not found", env.Error.Message)
}
