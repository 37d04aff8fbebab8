package articleRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	articles "RecyclePress/internal/api/article"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

type CommentDB struct {
	ID        sql.NullString `db:"id"`
	ArticleID sql.NullString `db:"article_id"`
	UserID    sql.NullString `db:"user_id"`
	Username  sql.NullString `db:"username"`
	Content   sql.NullString `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)

	var userID interface{}
	if comment.UserID != "" {
		userID = comment.UserID
	}

	argsKV := map[string]interface{}{
		"id":         comment.ID,
		"article_id": comment.ArticleID,
		"user_id":    userID,
		"username":   comment.Username,
		"content":    comment.Content,
		"created_at": comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, articles.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.Comment{}, err
	}

	return r.makeComment(comment), nil
}

func (r *commentsRepository) GetCommentsByArticle(ctx context.Context, articleID string) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var commentsList []CommentDB

	argsKV := map[string]interface{}{
		"article_id": articleID,
	}

	query, args, err := sqlx.Named(queryGetCommentsByArticle, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByArticle named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &commentsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentsByArticle execution err")
		return nil, err
	}

	var comments []entity.Comment
	for _, commentDB := range commentsList {
		comments = append(comments, r.makeComment(commentDB))
	}

	return comments, nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	return nil
}

func (r *commentsRepository) makeComment(comment CommentDB) entity.Comment {
	return entity.Comment{
		ID:        comment.ID.String,
		ArticleID: comment.ArticleID.String,
		UserID:    comment.UserID.String,
		Username:  comment.Username.String,
		Content:   comment.Content.String,
		CreatedAt: comment.CreatedAt,
	}
}
