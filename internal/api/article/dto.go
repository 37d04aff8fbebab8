package articles

import "time"

type CreateCategoryRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required,min=2,max=128"`
	Slug string `json:"slug" validate:"required,min=2,max=128"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateArticleRequest struct {
	ID            string `json:"id" validate:"required"`
	Title         string `json:"title" validate:"required,min=3,max=256"`
	Slug          string `json:"slug" validate:"required,min=3,max=256"`
	Excerpt       string `json:"excerpt" validate:"required"`
	Content       string `json:"content" validate:"required"`
	ImageURL      string `json:"image_url" validate:"omitempty"`
	Author        string `json:"author" validate:"required"`
	CategoryID    string `json:"category_id" validate:"omitempty"`
	PublishedDate string `json:"published_date" validate:"required"`
}

// UpdateArticleRequest overwrites every field it carries; there is no
// partial-merge beyond what the caller includes.
type UpdateArticleRequest struct {
	Title         string `json:"title" validate:"omitempty,min=3,max=256"`
	Slug          string `json:"slug" validate:"omitempty,min=3,max=256"`
	Excerpt       string `json:"excerpt" validate:"omitempty"`
	Content       string `json:"content" validate:"omitempty"`
	ImageURL      string `json:"image_url" validate:"omitempty"`
	Author        string `json:"author" validate:"omitempty"`
	CategoryID    string `json:"category_id" validate:"omitempty"`
	PublishedDate string `json:"published_date" validate:"omitempty"`
}

type ArticleResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Excerpt       string            `json:"excerpt"`
	Content       string            `json:"content"`
	ContentHTML   string            `json:"content_html,omitempty"`
	ImageURL      string            `json:"image_url"`
	Author        string            `json:"author"`
	CategoryID    string            `json:"category_id"`
	PublishedDate string            `json:"published_date"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Categories    *CategoryResponse `json:"categories"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

// ArticleRef echoes the identifying fields back after create and update.
type ArticleRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type CreateCommentRequest struct {
	Username string `json:"username" validate:"required,min=1,max=128"`
	Content  string `json:"content" validate:"required"`
	UserID   string `json:"user_id" validate:"omitempty"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"article_id"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
