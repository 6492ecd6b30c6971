package repository

import (
	"strings"

	"newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/shared/utils"
)

const commentCountColumn = `CAST(COUNT(comments.comment_id) AS INT) AS comment_count`

const summaryColumns = `articles.author, articles.title, articles.article_id, articles.topic,
	articles.created_at, articles.votes, COALESCE(articles.article_img_url, '')`

const articleColumns = `articles.article_id, articles.author, articles.title, articles.body,
	articles.topic, articles.created_at, articles.votes, COALESCE(articles.article_img_url, '')`

const articlesWithComments = `FROM articles
	LEFT OUTER JOIN comments ON comments.article_id = articles.article_id`

// BuildListArticlesQuery assembles the article list statement.
//
// The topic value is always a bound parameter. ORDER BY text comes only from
// model.SortColumn / model.SortOrder, which cannot hold arbitrary input.
// Equal sort values fall back to article_id ascending so pages are stable.
func BuildListArticlesQuery(p model.ListArticlesParams) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, 1)
	where := make([]string, 0, 1)

	sb.WriteString("SELECT ")
	sb.WriteString(summaryColumns)
	sb.WriteString(", ")
	sb.WriteString(commentCountColumn)
	sb.WriteString("\n")
	sb.WriteString(articlesWithComments)

	if p.Topic != "" {
		args = append(args, p.Topic)
		where = append(where, "articles.topic = "+utils.Placeholder(len(args)))
	}
	if len(where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(utils.JoinWithAnd(where))
	}

	sb.WriteString("\nGROUP BY articles.article_id")
	sb.WriteString("\nORDER BY ")
	sb.WriteString(p.SortBy.Identifier())
	sb.WriteString(" ")
	sb.WriteString(p.Order.Keyword())
	if !p.SortBy.IsPrimaryKey() {
		sb.WriteString(", articles.article_id ASC")
	}

	return sb.String(), args
}

// getArticleQuery selects one article with its comment count
const getArticleQuery = `SELECT ` + articleColumns + `, ` + commentCountColumn + `
	` + articlesWithComments + `
	WHERE articles.article_id = $1
	GROUP BY articles.article_id`

// incrementVotesQuery updates and reads back in a single statement,
// so concurrent votes never lose an increment
const incrementVotesQuery = `UPDATE articles
	SET votes = votes + $1
	WHERE article_id = $2
	RETURNING ` + articleColumns + `,
		(SELECT CAST(COUNT(*) AS INT) FROM comments WHERE comments.article_id = articles.article_id)`

const insertArticleQuery = `INSERT INTO articles (author, title, body, topic, article_img_url)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + articleColumns
