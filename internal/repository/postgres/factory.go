package postgres

import (
	"github.com/baharkarakas/blog-backend/internal/db"
	repo "github.com/baharkarakas/blog-backend/internal/repository"
)

type Repositories struct {
	Users repo.Users
	Posts repo.Posts
}

func NewRepositories(q db.Querier) Repositories {
	return Repositories{
		Users: &usersRepo{q},
		Posts: &postsRepo{q},
	}
}

func NewUsers(q db.Querier) repo.Users { return &usersRepo{q} }
func NewPosts(q db.Querier) repo.Posts { return &postsRepo{q} }
