package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"newsforum-backend/internal/config"
	"newsforum-backend/internal/infrastructure/database"
	"newsforum-backend/pkg/logger"

	apiHandler "newsforum-backend/internal/domains/api/handler"
	articleHandler "newsforum-backend/internal/domains/article/handler"
	articleRepo "newsforum-backend/internal/domains/article/repository"
	articleService "newsforum-backend/internal/domains/article/service"
	commentHandler "newsforum-backend/internal/domains/comment/handler"
	commentRepo "newsforum-backend/internal/domains/comment/repository"
	commentService "newsforum-backend/internal/domains/comment/service"
	"newsforum-backend/internal/domains/existence"
	topicHandler "newsforum-backend/internal/domains/topic/handler"
	topicRepo "newsforum-backend/internal/domains/topic/repository"
	topicService "newsforum-backend/internal/domains/topic/service"
	userHandler "newsforum-backend/internal/domains/user/handler"
	userRepo "newsforum-backend/internal/domains/user/repository"
	userService "newsforum-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the API process
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB

	// Repositories
	TopicRepo   topicRepo.TopicRepository
	UserRepo    userRepo.UserRepository
	ArticleRepo articleRepo.ArticleRepository
	CommentRepo commentRepo.CommentRepository

	// Cross-domain existence checks
	Resolver *existence.Resolver

	// Services
	TopicService   topicService.ServiceInterface
	UserService    userService.ServiceInterface
	ArticleService articleService.ServiceInterface
	CommentService commentService.ServiceInterface

	// Handlers
	APIHandler     *apiHandler.APIHandler
	TopicHandler   *topicHandler.TopicHandler
	UserHandler    *userHandler.UserHandler
	ArticleHandler *articleHandler.ArticleHandler
	CommentHandler *commentHandler.CommentHandler
}

// NewContainer loads config, initialises logging, connects to PostgreSQL and
// wires every layer. Any failure aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}, cfg.App.Environment)

	log.Info().Str("env", cfg.App.Environment).Msg("🔧 Initializing DI Container...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	log.Info().Msg("✅ Database connected")

	c, err := Build(cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// Build wires repositories, services and handlers on an already connected database
func Build(cfg *config.Config, db *database.PostgresDB) (*Container, error) {
	c := &Container{
		Config: cfg,
		DB:     db,
	}

	c.initRepositories()
	c.initServices()
	if err := c.initHandlers(); err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}

	return c, nil
}

// ========================================
// INITIALIZATION
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.TopicRepo = topicRepo.NewPostgresTopicRepository(pool)
	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.ArticleRepo = articleRepo.NewPostgresArticleRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)

	c.Resolver = existence.NewResolver(c.ArticleRepo, c.UserRepo, c.TopicRepo, c.CommentRepo)
}

func (c *Container) initServices() {
	c.TopicService = topicService.NewTopicService(c.TopicRepo)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.Resolver)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.Resolver)
}

func (c *Container) initHandlers() error {
	api, err := apiHandler.NewAPIHandler(c.DB, c.Config.App.Version)
	if err != nil {
		return err
	}
	c.APIHandler = api

	c.TopicHandler = topicHandler.NewTopicHandler(c.TopicService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	return nil
}

// Cleanup releases the database pool
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("✅ Database connections closed")
	}
}
