package userHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	userService "RecyclePress/internal/api/user/service"
	"RecyclePress/internal/middleware"
)

type UsersHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	usersService userService.IUsersService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUsersService,
) *UsersHandler {
	return &UsersHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		usersService: us,
	}
}

func (h *UsersHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")
	users.Post("/login", h.Login)
	users.Post("/register", h.Register)
	users.Get("/me", h.middleware.NewIdentityMiddleware, h.GetCurrentUser)
}
