package articles

import "RecyclePress/pkg/response"

var (
	ErrArticleNotFound    = response.NewError(404, "article not found")
	ErrCategoryNotFound   = response.NewError(404, "category not found")
	ErrCommentNotFound    = response.NewError(404, "comment not found")
	ErrSlugAlreadyExists  = response.NewError(409, "slug already exists")
	ErrCreateArticle      = response.NewError(500, "failed to create article")
	ErrUpdateArticle      = response.NewError(500, "failed to update article")
	ErrDeleteArticle      = response.NewError(500, "failed to delete article")
	ErrCreateCategory     = response.NewError(500, "failed to create category")
	ErrCreateComment      = response.NewError(500, "failed to create comment")
	ErrInvalidArticleData = response.NewError(400, "invalid article data")
)
