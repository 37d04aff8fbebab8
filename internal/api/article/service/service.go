package articleService

import (
	"context"

	"github.com/sirupsen/logrus"

	articles "RecyclePress/internal/api/article"
	articleRepository "RecyclePress/internal/api/article/repository"
	"RecyclePress/pkg/utils"
)

type IArticlesService interface {
	CreateArticle(ctx context.Context, req articles.CreateArticleRequest) (articles.ArticleRef, error)
	GetArticleByID(ctx context.Context, id string) (articles.ArticleResponse, error)
	GetAllArticles(ctx context.Context, categoryID, query string) (*articles.ArticleListResponse, error)
	UpdateArticle(ctx context.Context, id string, req articles.UpdateArticleRequest) (articles.ArticleRef, error)
	DeleteArticle(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, req articles.CreateCategoryRequest) (articles.CategoryResponse, error)
	GetAllCategories(ctx context.Context) (*articles.CategoryListResponse, error)

	CreateComment(ctx context.Context, articleID string, req articles.CreateCommentRequest) (articles.CommentResponse, error)
	GetCommentsByArticle(ctx context.Context, articleID string) ([]articles.CommentResponse, error)
	DeleteComment(ctx context.Context, id string) error
}

type articlesService struct {
	log          *logrus.Logger
	articlesRepo articleRepository.Repository
	utils        utils.IUtils
}

func NewArticlesService(
	log *logrus.Logger,
	articlesRepo articleRepository.Repository,
	utils utils.IUtils,
) IArticlesService {
	return &articlesService{
		log:          log,
		articlesRepo: articlesRepo,
		utils:        utils,
	}
}
