package articleRepository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RecyclePress/internal/entity"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Articles:   &articlesRepository{q: sqlExecutor, log: r.log},
		Categories: &categoriesRepository{q: sqlExecutor, log: r.log},
		Comments:   &commentsRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Articles interface {
		CreateArticle(ctx context.Context, article entity.Article) error
		GetArticleByID(ctx context.Context, id string) (entity.Article, error)
		GetAllArticles(ctx context.Context) ([]entity.Article, error)
		UpdateArticle(ctx context.Context, article entity.Article) error
		DeleteArticle(ctx context.Context, id string) error
	}

	Categories interface {
		CreateCategory(ctx context.Context, category entity.Category) error
		GetAllCategories(ctx context.Context) ([]entity.Category, error)
		GetCategoryByID(ctx context.Context, id string) (entity.Category, error)
	}

	Comments interface {
		CreateComment(ctx context.Context, comment entity.Comment) error
		GetCommentByID(ctx context.Context, id string) (entity.Comment, error)
		GetCommentsByArticle(ctx context.Context, articleID string) ([]entity.Comment, error)
		DeleteComment(ctx context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type articlesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type commentsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
