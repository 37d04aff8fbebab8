package mediaService

import (
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	"RecyclePress/internal/api/media"
	mediaRepository "RecyclePress/internal/api/media/repository"
	"RecyclePress/pkg/storage"
	"RecyclePress/pkg/utils"
)

type IMediaService interface {
	UploadMedia(ctx context.Context, file *multipart.FileHeader) (media.MediaResponse, error)
	GetMediaByID(ctx context.Context, id string) (media.MediaResponse, error)
	GetAllMedia(ctx context.Context) (*media.MediaListResponse, error)
	UpdateMedia(ctx context.Context, id string, req media.UpdateMediaRequest) (media.UpdateMediaRef, error)
	DeleteMedia(ctx context.Context, id string) error
}

type mediaService struct {
	log       *logrus.Logger
	mediaRepo mediaRepository.Repository
	storage   storage.ItfStorage
	utils     utils.IUtils
}

func NewMediaService(
	log *logrus.Logger,
	mediaRepo mediaRepository.Repository,
	storage storage.ItfStorage,
	utils utils.IUtils,
) IMediaService {
	return &mediaService{
		log:       log,
		mediaRepo: mediaRepo,
		storage:   storage,
		utils:     utils,
	}
}
