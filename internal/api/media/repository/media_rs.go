package mediaRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RecyclePress/internal/api/media"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

type MediaDB struct {
	ID           sql.NullString `db:"id"`
	Filename     sql.NullString `db:"filename"`
	OriginalName sql.NullString `db:"original_name"`
	MimeType     sql.NullString `db:"mimetype"`
	Size         sql.NullInt64  `db:"size"`
	URL          sql.NullString `db:"url"`
	AltText      sql.NullString `db:"alt_text"`
	Description  sql.NullString `db:"description"`
	UploadedAt   time.Time      `db:"uploaded_at"`
}

func (r *mediaRepository) CreateMedia(ctx context.Context, m entity.Media) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            m.ID,
		"filename":      m.Filename,
		"original_name": m.OriginalName,
		"mimetype":      m.MimeType,
		"size":          m.Size,
		"url":           m.URL,
		"alt_text":      m.AltText,
		"description":   m.Description,
		"uploaded_at":   m.UploadedAt,
	}

	query, args, err := sqlx.Named(queryCreateMedia, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMedia")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating media record")
		return err
	}

	return nil
}

func (r *mediaRepository) GetMediaByID(ctx context.Context, id string) (entity.Media, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var m MediaDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetMediaByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMediaByID named query preparation err")
		return entity.Media{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&m); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetMediaByID no rows found")
			return entity.Media{}, media.ErrMediaNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMediaByID execution err")
		return entity.Media{}, err
	}

	return r.makeMedia(m), nil
}

func (r *mediaRepository) GetAllMedia(ctx context.Context) ([]entity.Media, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var mediaList []MediaDB

	query, args, err := sqlx.Named(queryGetAllMedia, map[string]interface{}{})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllMedia named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &mediaList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllMedia execution err")
		return nil, err
	}

	var result []entity.Media
	for _, mediaDB := range mediaList {
		result = append(result, r.makeMedia(mediaDB))
	}

	return result, nil
}

func (r *mediaRepository) UpdateMedia(ctx context.Context, m entity.Media) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            m.ID,
		"original_name": m.OriginalName,
		"alt_text":      m.AltText,
		"description":   m.Description,
	}

	query, args, err := sqlx.Named(queryUpdateMedia, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateMedia named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateMedia execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateMedia rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         m.ID,
		}).Warn("UpdateMedia no rows affected")
		return media.ErrMediaNotFound
	}

	return nil
}

func (r *mediaRepository) DeleteMedia(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteMedia, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMedia named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteMedia execution err")
		return err
	}

	return nil
}

func (r *mediaRepository) makeMedia(m MediaDB) entity.Media {
	return entity.Media{
		ID:           m.ID.String,
		Filename:     m.Filename.String,
		OriginalName: m.OriginalName.String,
		MimeType:     m.MimeType.String,
		Size:         m.Size.Int64,
		URL:          m.URL.String,
		AltText:      m.AltText.String,
		Description:  m.Description.String,
		UploadedAt:   m.UploadedAt,
	}
}
