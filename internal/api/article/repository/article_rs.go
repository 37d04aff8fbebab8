package articleRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	articles "RecyclePress/internal/api/article"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

type ArticleDB struct {
	ID            sql.NullString `db:"id"`
	Title         sql.NullString `db:"title"`
	Slug          sql.NullString `db:"slug"`
	Excerpt       sql.NullString `db:"excerpt"`
	Content       sql.NullString `db:"content"`
	ImageURL      sql.NullString `db:"image_url"`
	Author        sql.NullString `db:"author"`
	CategoryID    sql.NullString `db:"category_id"`
	PublishedDate sql.NullString `db:"published_date"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`

	JoinedCategoryID  sql.NullString `db:"joined_category_id"`
	CategoryName      sql.NullString `db:"category_name"`
	CategorySlug      sql.NullString `db:"category_slug"`
	CategoryCreatedAt sql.NullTime   `db:"category_created_at"`
}

func (r *articlesRepository) CreateArticle(ctx context.Context, article entity.Article) error {
	requestID := contextPkg.GetRequestID(ctx)

	// The category reference is enforced by the store, so an unset one must
	// go in as NULL rather than an empty string.
	var categoryID interface{}
	if article.CategoryID != "" {
		categoryID = article.CategoryID
	}

	argsKV := map[string]interface{}{
		"id":             article.ID,
		"title":          article.Title,
		"slug":           article.Slug,
		"excerpt":        article.Excerpt,
		"content":        article.Content,
		"image_url":      article.ImageURL,
		"author":         article.Author,
		"category_id":    categoryID,
		"published_date": article.PublishedDate,
		"created_at":     article.CreatedAt,
		"updated_at":     article.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateArticle")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Article slug already exists")
			return articles.ErrSlugAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating article")
		return err
	}

	return nil
}

func (r *articlesRepository) GetArticleByID(ctx context.Context, id string) (entity.Article, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var article ArticleDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetArticleByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArticleByID named query preparation err")
		return entity.Article{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&article); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetArticleByID no rows found")
			return entity.Article{}, articles.ErrArticleNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArticleByID execution err")
		return entity.Article{}, err
	}

	return r.makeArticle(article), nil
}

func (r *articlesRepository) GetAllArticles(ctx context.Context) ([]entity.Article, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var articlesList []ArticleDB

	query, args, err := sqlx.Named(queryGetAllArticles, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllArticles named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &articlesList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllArticles execution err")
		return nil, err
	}

	var result []entity.Article
	for _, articleDB := range articlesList {
		result = append(result, r.makeArticle(articleDB))
	}

	return result, nil
}

func (r *articlesRepository) UpdateArticle(ctx context.Context, article entity.Article) error {
	requestID := contextPkg.GetRequestID(ctx)

	var categoryID interface{}
	if article.CategoryID != "" {
		categoryID = article.CategoryID
	}

	argsKV := map[string]interface{}{
		"id":          article.ID,
		"title":       article.Title,
		"slug":        article.Slug,
		"excerpt":     article.Excerpt,
		"content":     article.Content,
		"image_url":   article.ImageURL,
		"author":      article.Author,
		"category_id": categoryID,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateArticle named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		if sqlite.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Article slug already exists")
			return articles.ErrSlugAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateArticle execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateArticle rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         article.ID,
		}).Warn("UpdateArticle no rows affected")
		return articles.ErrArticleNotFound
	}

	return nil
}

// DeleteArticle is idempotent: deleting an id that does not exist reports
// success the same way deleting an existing one does. Comment rows go with
// the article through the store's cascade.
func (r *articlesRepository) DeleteArticle(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteArticle named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteArticle execution err")
		return err
	}

	return nil
}

func (r *articlesRepository) makeArticle(article ArticleDB) entity.Article {
	result := entity.Article{
		ID:            article.ID.String,
		Title:         article.Title.String,
		Slug:          article.Slug.String,
		Excerpt:       article.Excerpt.String,
		Content:       article.Content.String,
		ImageURL:      article.ImageURL.String,
		Author:        article.Author.String,
		CategoryID:    article.CategoryID.String,
		PublishedDate: article.PublishedDate.String,
		CreatedAt:     article.CreatedAt,
		UpdatedAt:     article.UpdatedAt,
	}

	// A dangling category_id leaves Category nil; the UI shows "unknown".
	if article.JoinedCategoryID.Valid {
		result.Category = &entity.Category{
			ID:        article.JoinedCategoryID.String,
			Name:      article.CategoryName.String,
			Slug:      article.CategorySlug.String,
			CreatedAt: article.CategoryCreatedAt.Time,
		}
	}

	return result
}
