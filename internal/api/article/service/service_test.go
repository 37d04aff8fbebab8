package articleService

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	articles "RecyclePress/internal/api/article"
	articleRepository "RecyclePress/internal/api/article/repository"
	"RecyclePress/pkg/utils"
)

func newTestService(t *testing.T) IArticlesService {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := sqlite.New()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewArticlesService(logger, articleRepository.New(db, logger), utils.New())
}

func TestGetArticleByIDDerivesContentHTML(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, articles.CreateArticleRequest{
		ID:            "a-200",
		Title:         "Photo Heavy Post",
		Slug:          "photo-heavy-post",
		Excerpt:       "Images inside",
		Content:       "Before ![yard](https://cdn.example.com/yard.jpg) after",
		Author:        "Jordan Blake",
		PublishedDate: "2026-08-15",
	})
	if err != nil {
		t.Fatalf("CreateArticle() error = %v", err)
	}

	got, err := svc.GetArticleByID(ctx, "a-200")
	if err != nil {
		t.Fatalf("GetArticleByID() error = %v", err)
	}

	if !strings.Contains(got.ContentHTML, `<img src="https://cdn.example.com/yard.jpg"`) {
		t.Errorf("ContentHTML not rendered: %q", got.ContentHTML)
	}
	if got.Content != "Before ![yard](https://cdn.example.com/yard.jpg) after" {
		t.Errorf("raw content was altered: %q", got.Content)
	}
}

func TestGetAllArticlesListOmitsContentHTML(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.GetAllArticles(context.Background(), "", "")
	if err != nil {
		t.Fatalf("GetAllArticles() error = %v", err)
	}
	if list.Total == 0 {
		t.Fatal("expected seeded articles")
	}
	for _, a := range list.Articles {
		if a.ContentHTML != "" {
			t.Errorf("list entry %s carries rendered content", a.ID)
		}
	}
}

func TestGetAllArticlesFiltersByCategory(t *testing.T) {
	svc := newTestService(t)

	list, err := svc.GetAllArticles(context.Background(), "2", "")
	if err != nil {
		t.Fatalf("GetAllArticles() error = %v", err)
	}
	if list.Total == 0 {
		t.Fatal("expected seeded articles in category 2")
	}
	for _, a := range list.Articles {
		if a.CategoryID != "2" {
			t.Errorf("article %s has category %s", a.ID, a.CategoryID)
		}
	}
}

func TestGetAllArticlesFiltersByQuery(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, articles.CreateArticleRequest{
		ID:            "a-201",
		Title:         "Zirconium Recovery Breakthrough",
		Slug:          "zirconium-recovery",
		Excerpt:       "Rare metal reclaim",
		Content:       "Process details.",
		Author:        "Jordan Blake",
		PublishedDate: "2026-08-20",
	})
	if err != nil {
		t.Fatalf("CreateArticle() error = %v", err)
	}

	list, err := svc.GetAllArticles(ctx, "", "zirconium")
	if err != nil {
		t.Fatalf("GetAllArticles() error = %v", err)
	}
	if list.Total != 1 || list.Articles[0].ID != "a-201" {
		t.Errorf("query filter returned %+v", list.Articles)
	}
}

func TestCreateArticleUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateArticle(context.Background(), articles.CreateArticleRequest{
		ID:            "a-202",
		Title:         "Orphaned Category Reference",
		Slug:          "orphaned-category-reference",
		Excerpt:       "Should not persist",
		Content:       "Body.",
		Author:        "Jordan Blake",
		CategoryID:    "no-such-category",
		PublishedDate: "2026-08-21",
	})
	if !errors.Is(err, articles.ErrCategoryNotFound) {
		t.Errorf("CreateArticle() error = %v, want ErrCategoryNotFound", err)
	}

	_, err = svc.GetArticleByID(context.Background(), "a-202")
	if !errors.Is(err, articles.ErrArticleNotFound) {
		t.Errorf("article persisted despite invalid category: %v", err)
	}
}

func TestCreateCommentOnMissingArticle(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateComment(context.Background(), "no-such-article", articles.CreateCommentRequest{
		Username: "visitor",
		Content:  "hello",
	})
	if !errors.Is(err, articles.ErrArticleNotFound) {
		t.Errorf("CreateComment() error = %v, want ErrArticleNotFound", err)
	}
}

func TestCreateCommentAssignsID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateComment(ctx, "1", articles.CreateCommentRequest{
		Username: "visitor",
		Content:  "Informative writeup.",
	})
	if err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}
	if created.ID == "" {
		t.Error("comment ID not assigned")
	}
	if created.ArticleID != "1" {
		t.Errorf("comment article ID = %q", created.ArticleID)
	}

	list, err := svc.GetCommentsByArticle(ctx, "1")
	if err != nil {
		t.Fatalf("GetCommentsByArticle() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("comment count = %d, want 1", len(list))
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.DeleteComment(context.Background(), "missing")
	if !errors.Is(err, articles.ErrCommentNotFound) {
		t.Errorf("DeleteComment() error = %v, want ErrCommentNotFound", err)
	}
}

func TestCreateCategory(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.CreateCategory(context.Background(), articles.CreateCategoryRequest{
		ID:   "cat-200",
		Name: "Exports",
		Slug: "exports",
	})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if resp.ID != "cat-200" || resp.Name != "Exports" {
		t.Errorf("CreateCategory() = %+v", resp)
	}
	if resp.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestGetAllCategories(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.GetAllCategories(context.Background())
	if err != nil {
		t.Fatalf("GetAllCategories() error = %v", err)
	}
	if len(resp.Categories) != 5 {
		t.Errorf("seeded categories = %d, want 5", len(resp.Categories))
	}
}
