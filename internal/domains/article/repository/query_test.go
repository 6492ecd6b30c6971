package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsforum-backend/internal/domains/article/model"
)

func resolve(t *testing.T, q model.ListArticlesQuery) model.ListArticlesParams {
	t.Helper()
	params, err := q.Resolve()
	require.NoError(t, err)
	return params
}

func TestBuildListArticlesQuery_Defaults(t *testing.T) {
	sql, args := BuildListArticlesQuery(resolve(t, model.ListArticlesQuery{}))

	assert.Empty(t, args)
	assert.Contains(t, sql, "CAST(COUNT(comments.comment_id) AS INT) AS comment_count")
	assert.Contains(t, sql, "LEFT OUTER JOIN comments ON comments.article_id = articles.article_id")
	assert.Contains(t, sql, "GROUP BY articles.article_id")
	assert.NotContains(t, sql, "WHERE")
	assert.NotContains(t, sql, "articles.body", "list rows carry no body")
	assert.True(t, strings.HasSuffix(sql, "ORDER BY articles.created_at DESC, articles.article_id ASC"), sql)
}

func TestBuildListArticlesQuery_TopicIsBound(t *testing.T) {
	sql, args := BuildListArticlesQuery(resolve(t, model.ListArticlesQuery{Topic: "cats' OR 1=1 --"}))

	assert.Contains(t, sql, "WHERE articles.topic = $1")
	assert.NotContains(t, sql, "OR 1=1")
	assert.Equal(t, []interface{}{"cats' OR 1=1 --"}, args)
}

func TestBuildListArticlesQuery_Ordering(t *testing.T) {
	tests := []struct {
		query model.ListArticlesQuery
		want  string
	}{
		{model.ListArticlesQuery{SortBy: "votes", Order: "asc"}, "ORDER BY articles.votes ASC, articles.article_id ASC"},
		{model.ListArticlesQuery{SortBy: "comment_count"}, "ORDER BY comment_count DESC, articles.article_id ASC"},
		{model.ListArticlesQuery{SortBy: "title", Order: "DESC"}, "ORDER BY articles.title DESC, articles.article_id ASC"},
		{model.ListArticlesQuery{SortBy: "article_id", Order: "asc"}, "ORDER BY articles.article_id ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			sql, _ := BuildListArticlesQuery(resolve(t, tt.query))
			assert.True(t, strings.HasSuffix(sql, tt.want), sql)
		})
	}
}

func TestBuildListArticlesQuery_ZeroParams(t *testing.T) {
	sql, args := BuildListArticlesQuery(model.ListArticlesParams{})

	assert.Empty(t, args)
	assert.True(t, strings.HasSuffix(sql, "ORDER BY articles.created_at DESC, articles.article_id ASC"), sql)
}

func TestArticleStatements(t *testing.T) {
	assert.Contains(t, getArticleQuery, "WHERE articles.article_id = $1")
	assert.Contains(t, getArticleQuery, "articles.body")
	assert.Contains(t, incrementVotesQuery, "SET votes = votes + $1")
	assert.Contains(t, incrementVotesQuery, "WHERE article_id = $2")
	assert.Contains(t, insertArticleQuery, "VALUES ($1, $2, $3, $4, $5)")
}
