package articleHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	articleService "RecyclePress/internal/api/article/service"
	"RecyclePress/internal/middleware"
)

type ArticlesHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	articlesService articleService.IArticlesService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as articleService.IArticlesService,
) *ArticlesHandler {
	return &ArticlesHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		articlesService: as,
	}
}

func (h *ArticlesHandler) Start(srv fiber.Router) {
	categories := srv.Group("/categories")
	categories.Get("", h.GetAllCategories)
	categories.Post("", h.CreateCategory)

	articles := srv.Group("/articles")
	articles.Get("", h.GetAllArticles)
	articles.Post("", h.CreateArticle)
	articles.Get("/:id", h.GetArticleByID)
	articles.Put("/:id", h.UpdateArticle)
	articles.Delete("/:id", h.DeleteArticle)

	articles.Get("/:id/comments", h.GetArticleComments)
	articles.Post("/:id/comments", h.CreateComment)

	srv.Delete("/comments/:id", h.DeleteComment)
}
