package services

import (
	"context"
	"strings"

	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService { return &UserService{users: users} }

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateUserInput struct {
	Name     string
	Email    string
	Password string // empty: keep current hash
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (models.User, error) {
	email := strings.TrimSpace(in.Email)
	taken, err := s.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, repo.ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
	})
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, perPage int) ([]models.User, int64, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	users, err := s.users.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Update(ctx context.Context, id int64, in UpdateUserInput) (models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	email := strings.TrimSpace(in.Email)
	taken, err := s.users.EmailTaken(ctx, email, id)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, repo.ErrEmailTaken
	}

	u.Name = strings.TrimSpace(in.Name)
	u.Email = email
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, u); err != nil {
		return models.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

// Authenticate resolves an email/password pair to the stored user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, err
	}
	return u, nil
}
