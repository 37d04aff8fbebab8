package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	articleHandler "RecyclePress/internal/api/article/handler"
	articleRepository "RecyclePress/internal/api/article/repository"
	articleService "RecyclePress/internal/api/article/service"
	mediaHandler "RecyclePress/internal/api/media/handler"
	mediaRepository "RecyclePress/internal/api/media/repository"
	mediaService "RecyclePress/internal/api/media/service"
	userHandler "RecyclePress/internal/api/user/handler"
	userRepository "RecyclePress/internal/api/user/repository"
	userService "RecyclePress/internal/api/user/service"
	"RecyclePress/internal/middleware"
	"RecyclePress/pkg/bcrypt"
	"RecyclePress/pkg/storage"
	"RecyclePress/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	storage     storage.ItfStorage
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := sqlite.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to open database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithStorage() ServerOption {
	return func(s *Server) error {
		store, err := storage.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize upload storage: %v", err)
			}
			return fmt.Errorf("failed to create upload storage: %w", err)
		}
		s.storage = store
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Articles Domain (articles, categories, comments)
	articleRepo := articleRepository.New(s.db, s.log)
	articleServices := articleService.NewArticlesService(s.log, articleRepo, s.utils)
	articleHandlers := articleHandler.New(s.log, s.validator, s.middleware, articleServices)

	// Media Domain
	mediaRepo := mediaRepository.New(s.db, s.log)
	mediaServices := mediaService.NewMediaService(s.log, mediaRepo, s.storage, s.utils)
	mediaHandlers := mediaHandler.New(s.log, s.validator, s.middleware, mediaServices)

	// Users Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.NewUsersService(s.log, userRepo, s.bcryptUtils, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, articleHandlers, mediaHandlers, userHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	if s.storage != nil {
		s.engine.Static("/uploads", s.storage.Dir())
	}

	router := s.engine.Group("/api", s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3001"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		return err
	}

	return nil
}

func (s *Server) Shutdown() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
	}
	return s.engine.Shutdown()
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
