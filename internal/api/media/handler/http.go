package mediaHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	mediaService "RecyclePress/internal/api/media/service"
	"RecyclePress/internal/middleware"
)

type MediaHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	mediaService mediaService.IMediaService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ms mediaService.IMediaService,
) *MediaHandler {
	return &MediaHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		mediaService: ms,
	}
}

func (h *MediaHandler) Start(srv fiber.Router) {
	media := srv.Group("/media")
	media.Post("/upload", h.UploadMedia)
	media.Get("", h.GetAllMedia)
	media.Get("/:id", h.GetMediaByID)
	media.Put("/:id", h.UpdateMedia)
	media.Delete("/:id", h.DeleteMedia)
}
