package articleService

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	articles "RecyclePress/internal/api/article"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

func (s *articlesService) CreateComment(ctx context.Context, articleID string, req articles.CreateCommentRequest) (articles.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return articles.CommentResponse{}, err
	}

	// Existence check so a comment on a missing article reads as a 404
	// instead of a foreign key failure.
	if _, err := repo.Articles.GetArticleByID(ctx, articleID); err != nil {
		return articles.CommentResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate comment ID")
		return articles.CommentResponse{}, err
	}

	comment := entity.Comment{
		ID:        id,
		ArticleID: articleID,
		UserID:    req.UserID,
		Username:  req.Username,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	if err := repo.Comments.CreateComment(ctx, comment); err != nil {
		return articles.CommentResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"comment_id": comment.ID,
		"article_id": articleID,
	}).Info("Comment created")

	return makeCommentResponse(comment), nil
}

func (s *articlesService) GetCommentsByArticle(ctx context.Context, articleID string) ([]articles.CommentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Comments.GetCommentsByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}

	responses := make([]articles.CommentResponse, 0, len(list))
	for _, comment := range list {
		responses = append(responses, makeCommentResponse(comment))
	}

	return responses, nil
}

func (s *articlesService) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.articlesRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := repo.Comments.GetCommentByID(ctx, id); err != nil {
		return err
	}

	if err := repo.Comments.DeleteComment(ctx, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"comment_id": id,
	}).Info("Comment deleted")

	return nil
}

func makeCommentResponse(comment entity.Comment) articles.CommentResponse {
	return articles.CommentResponse{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
