package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	articleModel "newsforum-backend/internal/domains/article/model"
	txutil "newsforum-backend/pkg/database"
)

// Data is one complete data set. Articles and comments are inserted in slice
// order, so on a fresh schema article i (1-based) gets article_id i.
type Data struct {
	Topics   []TopicRow
	Users    []UserRow
	Articles []ArticleRow
	Comments []CommentRow
}

type TopicRow struct {
	Slug        string
	Description string
}

type UserRow struct {
	Username  string
	Name      string
	AvatarURL string
}

type ArticleRow struct {
	Title     string
	Topic     string
	Author    string
	Body      string
	CreatedAt time.Time
	Votes     int
	ImgURL    string // empty = default image
}

type CommentRow struct {
	ArticleID int
	Author    string
	Body      string
	Votes     int
	CreatedAt time.Time
}

// Seed inserts data in a single transaction using COPY
func Seed(ctx context.Context, db txutil.Beginner, data Data) error {
	return txutil.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		if err := copyRows(ctx, tx, "topics", []string{"slug", "description"}, topicRows(data.Topics)); err != nil {
			return err
		}
		if err := copyRows(ctx, tx, "users", []string{"username", "name", "avatar_url"}, userRows(data.Users)); err != nil {
			return err
		}
		if err := copyRows(ctx, tx, "articles",
			[]string{"title", "topic", "author", "body", "created_at", "votes", "article_img_url"},
			articleRows(data.Articles)); err != nil {
			return err
		}
		if err := copyRows(ctx, tx, "comments",
			[]string{"article_id", "author", "body", "votes", "created_at"},
			commentRows(data.Comments)); err != nil {
			return err
		}

		log.Info().
			Int("topics", len(data.Topics)).
			Int("users", len(data.Users)).
			Int("articles", len(data.Articles)).
			Int("comments", len(data.Comments)).
			Msg("[SEED] data inserted")
		return nil
	})
}

func copyRows(ctx context.Context, tx pgx.Tx, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	n, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", table, err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("seeded %d of %d %s rows", n, len(rows), table)
	}
	return nil
}

func topicRows(topics []TopicRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, []interface{}{t.Slug, t.Description})
	}
	return rows
}

func userRows(users []UserRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		rows = append(rows, []interface{}{u.Username, u.Name, u.AvatarURL})
	}
	return rows
}

func articleRows(articles []ArticleRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(articles))
	for _, a := range articles {
		img := a.ImgURL
		if img == "" {
			img = articleModel.DefaultArticleImgURL
		}
		rows = append(rows, []interface{}{a.Title, a.Topic, a.Author, a.Body, a.CreatedAt, a.Votes, img})
	}
	return rows
}

func commentRows(comments []CommentRow) [][]interface{} {
	rows := make([][]interface{}, 0, len(comments))
	for _, cm := range comments {
		rows = append(rows, []interface{}{cm.ArticleID, cm.Author, cm.Body, cm.Votes, cm.CreatedAt})
	}
	return rows
}
