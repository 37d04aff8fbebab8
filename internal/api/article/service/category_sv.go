package articleService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	articles "RecyclePress/internal/api/article"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

func (s *articlesService) CreateCategory(ctx context.Context, req articles.CreateCategoryRequest) (articles.CategoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return articles.CategoryResponse{}, err
	}

	category := entity.Category{
		ID:        req.ID,
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: time.Now(),
	}

	if err := repo.Categories.CreateCategory(ctx, category); err != nil {
		return articles.CategoryResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"category_id": category.ID,
	}).Info("Category created")

	return articles.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}, nil
}

func (s *articlesService) GetAllCategories(ctx context.Context) (*articles.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Categories.GetAllCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]articles.CategoryResponse, 0, len(list))
	for _, category := range list {
		responses = append(responses, articles.CategoryResponse{
			ID:        category.ID,
			Name:      category.Name,
			Slug:      category.Slug,
			CreatedAt: category.CreatedAt,
		})
	}

	return &articles.CategoryListResponse{Categories: responses}, nil
}
