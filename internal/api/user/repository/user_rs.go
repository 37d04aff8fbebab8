package userRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RecyclePress/database/sqlite"
	"RecyclePress/internal/api/user"
	"RecyclePress/internal/entity"
	contextPkg "RecyclePress/pkg/context"
)

type UserDB struct {
	ID        sql.NullString `db:"id"`
	Username  sql.NullString `db:"username"`
	Email     sql.NullString `db:"email"`
	Password  sql.NullString `db:"password"`
	Role      sql.NullString `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *usersRepository) CreateUser(ctx context.Context, u entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"password":   u.Password,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if sqlite.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"username":   u.Username,
			}).Warn("Duplicate username or email on CreateUser")
			return user.ErrUserAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *usersRepository) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var u UserDB

	argsKV := map[string]interface{}{
		"username": username,
	}

	query, args, err := sqlx.Named(queryGetUserByUsername, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByUsername named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByUsername execution err")
		return entity.User{}, err
	}

	return r.makeUser(u), nil
}

func (r *usersRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var u UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetUserByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    id,
			}).Warn("GetUserByID no rows found")
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(u), nil
}

func (r *usersRepository) makeUser(u UserDB) entity.User {
	return entity.User{
		ID:        u.ID.String,
		Username:  u.Username.String,
		Email:     u.Email.String,
		Password:  u.Password.String,
		Role:      u.Role.String,
		CreatedAt: u.CreatedAt,
	}
}
