package userService

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"RecyclePress/internal/api/user"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

func (s *usersService) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return user.LoginResponse{}, err
	}

	u, err := repo.Users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		// An unknown username reads the same as a wrong password.
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, err
	}

	if err := s.bcrypt.ComparePassword(u.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"username":   req.Username,
		}).Warn("Password mismatch on login")
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    u.ID,
		"username":   u.Username,
	}).Info("User logged in")

	return user.LoginResponse{User: makeUserResponse(u)}, nil
}

func (s *usersService) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return user.UserResponse{}, err
	}

	hashed, err := s.bcrypt.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return user.UserResponse{}, user.ErrCreateUser
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return user.UserResponse{}, user.ErrCreateUser
	}

	u := entity.User{
		ID:        id,
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashed,
		Role:      entity.RoleUser,
		CreatedAt: time.Now(),
	}

	if err := repo.Users.CreateUser(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    u.ID,
		"username":   u.Username,
	}).Info("User registered")

	return makeUserResponse(u), nil
}

func (s *usersService) GetCurrentUser(ctx context.Context, id string) (user.UserResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if id == "" {
		return user.UserResponse{}, user.ErrNotLoggedIn
	}

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return user.UserResponse{}, err
	}

	u, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return makeUserResponse(u), nil
}

func makeUserResponse(u entity.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
