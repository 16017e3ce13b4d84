package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/baharkarakas/blog-backend/internal/db"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
)

type postsRepo struct{ q db.Querier }

const postCols = `id, title, slug, body, status, user_id, created_at, updated_at`

func (r *postsRepo) scan(row pgx.Row) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Status, &p.UserID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, repository.ErrPostNotFound
	}
	return p, err
}

func (r *postsRepo) Create(ctx context.Context, p models.Post) (models.Post, error) {
	return r.scan(r.q.QueryRow(ctx,
		`INSERT INTO posts(title, slug, body, status, user_id) VALUES($1,$2,$3,$4,$5) RETURNING `+postCols,
		p.Title, p.Slug, p.Body, p.Status, p.UserID,
	))
}

func (r *postsRepo) GetByID(ctx context.Context, id int64) (models.Post, error) {
	return r.scan(r.q.QueryRow(ctx, `SELECT `+postCols+` FROM posts WHERE id=$1`, id))
}

func (r *postsRepo) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+postCols+` FROM posts ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *postsRepo) ListByUser(ctx context.Context, userID int64) ([]models.Post, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+postCols+` FROM posts WHERE user_id=$1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func collect(rows pgx.Rows) ([]models.Post, error) {
	var out []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Body, &p.Status, &p.UserID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postsRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// Update never touches user_id: the owner is fixed at creation.
func (r *postsRepo) Update(ctx context.Context, p models.Post) (models.Post, error) {
	return r.scan(r.q.QueryRow(ctx,
		`UPDATE posts SET title=$2, slug=$3, body=$4, status=$5, updated_at=now() WHERE id=$1 RETURNING `+postCols,
		p.ID, p.Title, p.Slug, p.Body, p.Status,
	))
}

func (r *postsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrPostNotFound
	}
	return nil
}
