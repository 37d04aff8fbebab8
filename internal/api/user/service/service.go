package userService

import (
	"context"

	"github.com/sirupsen/logrus"

	"RecyclePress/internal/api/user"
	userRepository "RecyclePress/internal/api/user/repository"
	"RecyclePress/pkg/bcrypt"
	"RecyclePress/pkg/utils"
)

type IUsersService interface {
	Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error)
	Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error)
	GetCurrentUser(ctx context.Context, id string) (user.UserResponse, error)
}

type usersService struct {
	log      *logrus.Logger
	userRepo userRepository.Repository
	bcrypt   bcrypt.IBcrypt
	utils    utils.IUtils
}

func NewUsersService(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	bcrypt bcrypt.IBcrypt,
	utils utils.IUtils,
) IUsersService {
	return &usersService{
		log:      log,
		userRepo: userRepo,
		bcrypt:   bcrypt,
		utils:    utils,
	}
}
