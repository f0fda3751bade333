package service

import (
	"context"
	"time"

	"quickbite/internal/user-svc/domain"
)

type UserServiceInterface interface {
	Register(ctx context.Context, user *domain.User, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	GetUser(id int) (*domain.User, error)
	GetUserByEmail(email string) (*domain.User, error)
	UpdateUser(user *domain.User) (int64, error)
}

type UserCache interface {
	ProfileKey(userID int) string
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ UserServiceInterface = (*UserService)(nil)
