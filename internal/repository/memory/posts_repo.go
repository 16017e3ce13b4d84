package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type PostsRepo struct {
	mu     sync.RWMutex
	posts  map[int64]models.Post
	nextID int64
}

func NewPostsRepo() *PostsRepo {
	return &PostsRepo{posts: make(map[int64]models.Post), nextID: 1}
}

func (r *PostsRepo) Create(ctx context.Context, p models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.nextID++
	r.posts[p.ID] = p
	return p, nil
}

func (r *PostsRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return models.Post{}, repository.ErrPostNotFound
	}
	return p, nil
}

// newest first; ID breaks ties since test fixtures share timestamps
func (r *PostsRepo) sorted() []models.Post {
	all := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return all
}

func (r *PostsRepo) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *PostsRepo) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Post
	for _, p := range r.sorted() {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PostsRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

func (r *PostsRepo) Update(ctx context.Context, p models.Post) (models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.posts[p.ID]
	if !ok {
		return models.Post{}, repository.ErrPostNotFound
	}
	stored.Title = p.Title
	stored.Slug = p.Slug
	stored.Body = p.Body
	stored.Status = p.Status
	stored.UpdatedAt = time.Now()
	r.posts[p.ID] = stored
	return stored, nil
}

func (r *PostsRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}
