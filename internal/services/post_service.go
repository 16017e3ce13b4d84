package services

import (
	"context"

	"github.com/baharkarakas/blog-backend/internal/models"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type PostService struct {
	posts repo.Posts
	users repo.Users
}

func NewPostService(posts repo.Posts, users repo.Users) *PostService {
	return &PostService{posts: posts, users: users}
}

type CreatePostInput struct {
	Title  string
	Body   string
	UserID int64
	Status models.PostStatus
}

type UpdatePostInput struct {
	Title  string
	Body   string
	Status models.PostStatus
}

func (s *PostService) Create(ctx context.Context, in CreatePostInput) (models.Post, error) {
	exists, err := s.users.Exists(ctx, in.UserID)
	if err != nil {
		return models.Post{}, err
	}
	if !exists {
		return models.Post{}, repo.ErrUserNotFound
	}

	return s.posts.Create(ctx, models.Post{
		Title:  in.Title,
		Slug:   models.Slugify(in.Title),
		Body:   in.Body,
		Status: in.Status,
		UserID: in.UserID,
	})
}

func (s *PostService) Get(ctx context.Context, id int64) (models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, page, perPage int) ([]models.Post, int64, error) {
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	posts, err := s.posts.List(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

// Update re-derives the slug from the new title; the owner never changes.
func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostInput) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	p.Title = in.Title
	p.Slug = models.Slugify(in.Title)
	p.Body = in.Body
	p.Status = in.Status
	return s.posts.Update(ctx, p)
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}
