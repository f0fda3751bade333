package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"quickbite/auth"
	"quickbite/internal/user-svc/domain"
	"quickbite/internal/user-svc/storage"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUser        = errors.New("name, email and password are required")
	ErrInvalidRole        = errors.New("unknown role")
)

const profileTTL = 5 * time.Minute

var validRoles = map[string]bool{
	string(auth.RoleCustomer):   true,
	string(auth.RoleRestaurant): true,
	string(auth.RoleAgent):      true,
}

type UserService struct {
	repo  UserRepository
	cache UserCache
}

func NewUserService(repo UserRepository, cache UserCache) *UserService {
	return &UserService{repo: repo, cache: cache}
}

func (s *UserService) degraded(d domain.Degradation) {
	if d.Err != nil {
		log.Printf("Warning: degraded %s: %v", d.Op, d.Err)
	}
}

// Register stores the user with a bcrypt hash and returns a signed token
// so clients are authenticated immediately.
func (s *UserService) Register(ctx context.Context, user *domain.User, password string) (string, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || password == "" {
		return "", ErrInvalidUser
	}
	if user.Role == "" {
		user.Role = string(auth.RoleCustomer)
	}
	if !validRoles[user.Role] {
		return "", ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.CreateUser(user); err != nil {
		if storage.IsUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return auth.GenerateToken(user.ID, user.Email, auth.Role(user.Role))
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, auth.Role(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Profile(ctx context.Context, userID int) (*domain.User, error) {
	key := s.cache.ProfileKey(userID)
	var cached domain.User
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	user, err := s.repo.GetUser(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.degraded(domain.Degradation{Op: "cache user profile",
		Err: s.cache.SetJSON(ctx, key, user, profileTTL)})
	return user, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return ErrInvalidUser
	}
	affected, err := s.repo.UpdateUser(user)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	s.degraded(domain.Degradation{Op: "cache invalidate",
		Err: s.cache.Delete(ctx, s.cache.ProfileKey(user.ID))})
	return nil
}
