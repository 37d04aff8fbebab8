package articleService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	articles "RecyclePress/internal/api/article"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
	"RecyclePress/pkg/render"
)

func (s *articlesService) CreateArticle(ctx context.Context, req articles.CreateArticleRequest) (articles.ArticleRef, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return articles.ArticleRef{}, err
	}

	// A category reference must point at a real category before the insert
	// so the caller gets a 404 instead of a constraint failure.
	if req.CategoryID != "" {
		if _, err := repo.Categories.GetCategoryByID(ctx, req.CategoryID); err != nil {
			return articles.ArticleRef{}, err
		}
	}

	now := time.Now()
	article := entity.Article{
		ID:            req.ID,
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		Author:        req.Author,
		CategoryID:    req.CategoryID,
		PublishedDate: req.PublishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := repo.Articles.CreateArticle(ctx, article); err != nil {
		return articles.ArticleRef{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"article_id": article.ID,
	}).Info("Article created")

	return articles.ArticleRef{ID: article.ID, Title: article.Title, Slug: article.Slug}, nil
}

func (s *articlesService) GetArticleByID(ctx context.Context, id string) (articles.ArticleResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return articles.ArticleResponse{}, err
	}

	article, err := repo.Articles.GetArticleByID(ctx, id)
	if err != nil {
		return articles.ArticleResponse{}, err
	}

	resp := makeArticleResponse(article)
	// Rendered markup is derived for display only, never written back.
	resp.ContentHTML = render.Content(article.Content)

	return resp, nil
}

func (s *articlesService) GetAllArticles(ctx context.Context, categoryID, query string) (*articles.ArticleListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Articles.GetAllArticles(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]articles.ArticleResponse, 0, len(list))
	for _, article := range list {
		responses = append(responses, makeArticleResponse(article))
	}

	responses = articles.FilterArticles(responses, categoryID, query)

	return &articles.ArticleListResponse{
		Articles: responses,
		Total:    len(responses),
	}, nil
}

func (s *articlesService) UpdateArticle(ctx context.Context, id string, req articles.UpdateArticleRequest) (articles.ArticleRef, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return articles.ArticleRef{}, err
	}

	article := entity.Article{
		ID:         id,
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		Author:     req.Author,
		CategoryID: req.CategoryID,
	}

	if err := repo.Articles.UpdateArticle(ctx, article); err != nil {
		return articles.ArticleRef{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"article_id": id,
	}).Info("Article updated")

	return articles.ArticleRef{ID: id, Title: req.Title, Slug: req.Slug}, nil
}

func (s *articlesService) DeleteArticle(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if err := repo.Articles.DeleteArticle(ctx, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"article_id": id,
	}).Info("Article deleted")

	return nil
}

func makeArticleResponse(article entity.Article) articles.ArticleResponse {
	resp := articles.ArticleResponse{
		ID:            article.ID,
		Title:         article.Title,
		Slug:          article.Slug,
		Excerpt:       article.Excerpt,
		Content:       article.Content,
		ImageURL:      article.ImageURL,
		Author:        article.Author,
		CategoryID:    article.CategoryID,
		PublishedDate: article.PublishedDate,
		CreatedAt:     article.CreatedAt,
		UpdatedAt:     article.UpdatedAt,
	}

	if article.Category != nil {
		resp.Categories = &articles.CategoryResponse{
			ID:        article.Category.ID,
			Name:      article.Category.Name,
			Slug:      article.Category.Slug,
			CreatedAt: article.Category.CreatedAt,
		}
	}

	return resp
}
