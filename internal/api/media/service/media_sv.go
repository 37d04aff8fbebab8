package mediaService

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"

	"RecyclePress/internal/api/media"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
	"RecyclePress/pkg/utils"
)

func (s *mediaService) UploadMedia(ctx context.Context, file *multipart.FileHeader) (media.MediaResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateMediaFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Upload validation failed")

		switch {
		case errors.Is(err, utils.ErrNoFile):
			return media.MediaResponse{}, media.ErrNoFileUploaded
		case errors.Is(err, utils.ErrFileTooLarge):
			return media.MediaResponse{}, media.ErrFileTooLarge
		default:
			return media.MediaResponse{}, media.ErrInvalidFileType
		}
	}

	repo, err := s.mediaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return media.MediaResponse{}, err
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate media ID")
		return media.MediaResponse{}, err
	}

	filename := s.utils.GenerateUploadFilename(file.Filename)

	if err := s.storage.SaveFile(file, filename); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"filename":   filename,
		}).Error("Failed to write uploaded file")
		return media.MediaResponse{}, media.ErrFailedToUpload
	}

	m := entity.Media{
		ID:           id,
		Filename:     filename,
		OriginalName: file.Filename,
		MimeType:     file.Header.Get("Content-Type"),
		Size:         file.Size,
		URL:          "/uploads/" + filename,
		UploadedAt:   time.Now(),
	}

	// The file is already on disk; an insert failure here leaves an
	// orphaned file rather than rolling the write back.
	if err := repo.Media.CreateMedia(ctx, m); err != nil {
		return media.MediaResponse{}, media.ErrFailedToUpload
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"media_id":   m.ID,
		"filename":   filename,
		"size":       m.Size,
	}).Info("Media uploaded")

	return makeMediaResponse(m), nil
}

func (s *mediaService) GetMediaByID(ctx context.Context, id string) (media.MediaResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.mediaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return media.MediaResponse{}, err
	}

	m, err := repo.Media.GetMediaByID(ctx, id)
	if err != nil {
		return media.MediaResponse{}, err
	}

	return makeMediaResponse(m), nil
}

func (s *mediaService) GetAllMedia(ctx context.Context) (*media.MediaListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.mediaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Media.GetAllMedia(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]media.MediaResponse, 0, len(list))
	for _, m := range list {
		responses = append(responses, makeMediaResponse(m))
	}

	return &media.MediaListResponse{
		Media: responses,
		Total: len(responses),
	}, nil
}

func (s *mediaService) UpdateMedia(ctx context.Context, id string, req media.UpdateMediaRequest) (media.UpdateMediaRef, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.mediaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return media.UpdateMediaRef{}, err
	}

	m := entity.Media{
		ID:           id,
		OriginalName: req.OriginalName,
		AltText:      req.AltText,
		Description:  req.Description,
	}

	if err := repo.Media.UpdateMedia(ctx, m); err != nil {
		return media.UpdateMediaRef{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"media_id":   id,
	}).Info("Media updated")

	return media.UpdateMediaRef{
		ID:           id,
		OriginalName: req.OriginalName,
		AltText:      req.AltText,
		Description:  req.Description,
	}, nil
}

// DeleteMedia removes the file first, then the record. The two steps share
// no transaction: a failure in either can orphan the other side.
func (s *mediaService) DeleteMedia(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.mediaRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	m, err := repo.Media.GetMediaByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteFile(m.Filename); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"filename":   m.Filename,
		}).Error("Failed to delete media file")
		return media.ErrDeleteMedia
	}

	if err := repo.Media.DeleteMedia(ctx, id); err != nil {
		return media.ErrDeleteMedia
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"media_id":   id,
	}).Info("Media deleted")

	return nil
}

func makeMediaResponse(m entity.Media) media.MediaResponse {
	return media.MediaResponse{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		AltText:      m.AltText,
		Description:  m.Description,
		UploadedAt:   m.UploadedAt,
	}
}
