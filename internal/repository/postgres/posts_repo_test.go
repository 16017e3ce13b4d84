package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/baharkarakas/blog-backend/internal/repository/postgres"
)

var postCols = []string{"id", "title", "slug", "body", "status", "user_id", "created_at", "updated_at"}

func postRow(id int64, title, slug string, userID int64, at time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(postCols).
		AddRow(id, title, slug, "body text", models.StatusPublished, userID, at, at)
}

func TestPostsRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO posts(title, slug, body, status, user_id)`)).
		WithArgs("My Post", "my-post", "body text", models.StatusPublished, int64(7)).
		WillReturnRows(postRow(1, "My Post", "my-post", 7, now))

	repo := postgres.NewPosts(mock)
	created, err := repo.Create(context.Background(), models.Post{
		Title: "My Post", Slug: "my-post", Body: "body text",
		Status: models.StatusPublished, UserID: 7,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "my-post", created.Slug)
	assert.Equal(t, int64(7), created.UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostsRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, slug, body, status, user_id, created_at, updated_at FROM posts WHERE id=$1`)).
			WithArgs(int64(5)).
			WillReturnRows(postRow(5, "Found", "found", 2, time.Now()))

		got, err := postgres.NewPosts(mock).GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "Found", got.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, slug, body, status, user_id, created_at, updated_at FROM posts WHERE id=$1`)).
			WithArgs(int64(9899)).
			WillReturnError(pgx.ErrNoRows)

		_, err := postgres.NewPosts(mock).GetByID(context.Background(), 9899)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostsRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows(postCols).
		AddRow(int64(2), "Newer", "newer", "body text", models.StatusDraft, int64(1), now, now).
		AddRow(int64(1), "Older", "older", "body text", models.StatusPublished, int64(1), now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .+ FROM posts ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(15, 0).
		WillReturnRows(rows)

	got, err := postgres.NewPosts(mock).List(context.Background(), 15, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, "Older", got[1].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostsRepo_Count(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM posts`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(50)))

	n, err := postgres.NewPosts(mock).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostsRepo_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE posts SET title=$2, slug=$3, body=$4, status=$5, updated_at=now() WHERE id=$1`)).
		WithArgs(int64(3), "New Title", "new-title", "new body", models.StatusDraft).
		WillReturnRows(postRow(3, "New Title", "new-title", 9, time.Now()))

	got, err := postgres.NewPosts(mock).Update(context.Background(), models.Post{
		ID: 3, Title: "New Title", Slug: "new-title", Body: "new body", Status: models.StatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-title", got.Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostsRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	t.Run("deletes the row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id=$1`)).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, postgres.NewPosts(mock).Delete(context.Background(), 3))
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id=$1`)).
			WithArgs(int64(9899)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := postgres.NewPosts(mock).Delete(context.Background(), 9899)
		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
