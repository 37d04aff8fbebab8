package userService

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	"RecyclePress/internal/api/user"
	userRepository "RecyclePress/internal/api/user/repository"
	"RecyclePress/pkg/bcrypt"
	"RecyclePress/pkg/utils"
)

func newTestService(t *testing.T) IUsersService {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := sqlite.New()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewUsersService(logger, userRepository.New(db, logger), bcrypt.New(), utils.New())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, user.RegisterRequest{
		Username: "scrapfan",
		Email:    "scrapfan@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.ID == "" {
		t.Error("registered user has empty ID")
	}
	if registered.Role != "user" {
		t.Errorf("registered role = %q, want %q", registered.Role, "user")
	}

	resp, err := svc.Login(ctx, user.LoginRequest{Username: "scrapfan", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.User.Username != "scrapfan" || resp.User.Email != "scrapfan@example.com" {
		t.Errorf("login response mismatch: %+v", resp.User)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := user.RegisterRequest{
		Username: "taken",
		Email:    "first@example.com",
		Password: "password1",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	req.Email = "second@example.com"
	_, err := svc.Register(ctx, req)
	if !errors.Is(err, user.ErrUserAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, user.RegisterRequest{
		Username: "first",
		Email:    "shared@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(ctx, user.RegisterRequest{
		Username: "second",
		Email:    "shared@example.com",
		Password: "password1",
	})
	if !errors.Is(err, user.ErrUserAlreadyExists) {
		t.Errorf("Register() error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "admin",
		Password: "not-the-password",
	})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginSeededAdmin(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.User.ID != "1" || resp.User.Role != "admin" {
		t.Errorf("seeded admin login mismatch: %+v", resp.User)
	}
}

func TestGetCurrentUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	got, err := svc.GetCurrentUser(ctx, "1")
	if err != nil {
		t.Fatalf("GetCurrentUser() error = %v", err)
	}
	if got.Username != "admin" {
		t.Errorf("GetCurrentUser() = %+v", got)
	}
}

func TestGetCurrentUserEmptyID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCurrentUser(context.Background(), "")
	if !errors.Is(err, user.ErrNotLoggedIn) {
		t.Errorf("GetCurrentUser() error = %v, want ErrNotLoggedIn", err)
	}
}

func TestGetCurrentUserUnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCurrentUser(context.Background(), "does-not-exist")
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("GetCurrentUser() error = %v, want ErrUserNotFound", err)
	}
}
