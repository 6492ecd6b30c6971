package seed

import (
	"context"
	"fmt"

	articleModel "newsforum-backend/internal/domains/article/model"
	"newsforum-backend/internal/infrastructure/database"
)

// dropStatements run child tables first
var dropStatements = []string{
	`DROP TABLE IF EXISTS comments`,
	`DROP TABLE IF EXISTS articles`,
	`DROP TABLE IF EXISTS users`,
	`DROP TABLE IF EXISTS topics`,
}

var createStatements = []string{
	`CREATE TABLE topics (
		slug VARCHAR PRIMARY KEY,
		description VARCHAR NOT NULL
	)`,
	`CREATE TABLE users (
		username VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		avatar_url VARCHAR
	)`,
	`CREATE TABLE articles (
		article_id SERIAL PRIMARY KEY,
		title VARCHAR NOT NULL,
		topic VARCHAR NOT NULL REFERENCES topics(slug),
		author VARCHAR NOT NULL REFERENCES users(username),
		body VARCHAR NOT NULL,
		created_at TIMESTAMP DEFAULT NOW(),
		votes INT DEFAULT 0 NOT NULL,
		article_img_url VARCHAR DEFAULT '` + articleModel.DefaultArticleImgURL + `'
	)`,
	`CREATE TABLE comments (
		comment_id SERIAL PRIMARY KEY,
		body VARCHAR NOT NULL,
		article_id INT REFERENCES articles(article_id) ON DELETE CASCADE NOT NULL,
		author VARCHAR REFERENCES users(username) NOT NULL,
		votes INT DEFAULT 0 NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	)`,
}

// CreateSchema drops and recreates every table. Development and test databases only.
func CreateSchema(ctx context.Context, db database.DBTX) error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	for _, stmt := range createStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
