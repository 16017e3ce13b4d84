package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/models"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})

	resp, raw := env.do(t, http.MethodPost, "/users", map[string]string{
		"name":     "Test user",
		"email":    "test@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env2 httpx.Envelope
	require.NoError(t, json.Unmarshal(raw, &env2))
	assert.True(t, env2.Success)
	assert.Equal(t, "User store successfully", env2.Message)

	u, err := env.users.GetByEmail(context.Background(), "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Test user", u.Name)
	assert.NotEqual(t, "password", u.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("password", u.PasswordHash))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	env.seedUser(t, "First", "test@example.com")

	resp, raw := env.do(t, http.MethodPost, "/users", map[string]string{
		"name":     "Second",
		"email":    "test@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body httpx.ValidationBody
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.Errors, "email")

	n, err := env.users.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreateUserValidation(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})

	tests := []struct {
		name      string
		body      map[string]string
		wantField string
	}{
		{
			name:      "missing email",
			body:      map[string]string{"name": "Test user", "password": "password"},
			wantField: "email",
		},
		{
			name:      "malformed email",
			body:      map[string]string{"name": "Test user", "email": "not-an-email", "password": "password"},
			wantField: "email",
		},
		{
			name:      "short password",
			body:      map[string]string{"name": "Test user", "email": "a@b.com", "password": "short"},
			wantField: "password",
		},
		{
			name:      "missing name",
			body:      map[string]string{"email": "a@b.com", "password": "password"},
			wantField: "name",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := env.do(t, http.MethodPost, "/users", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			var body httpx.ValidationBody
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Contains(t, body.Errors, tt.wantField)
		})
	}

	n, err := env.users.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestShowUser(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	u := env.seedUser(t, "Visible", "visible@example.com")

	resp, raw := env.do(t, http.MethodGet, "/users/"+itoa(u.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Visible", got["name"])
	assert.Equal(t, "visible@example.com", got["email"])

	// hash never leaves the server
	assert.NotContains(t, got, "password_hash")
	assert.NotContains(t, string(raw), u.PasswordHash)
}

func TestShowUserNotFound(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})

	resp, raw := env.do(t, http.MethodGet, "/users/424242", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "User not found", body["message"])
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	u := env.seedUser(t, "Before", "before@example.com")
	originalHash := u.PasswordHash

	// no password in the payload: hash must survive
	resp, raw := env.do(t, http.MethodPut, "/users/"+itoa(u.ID), map[string]string{
		"name":  "After",
		"email": "after@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env2 httpx.Envelope
	require.NoError(t, json.Unmarshal(raw, &env2))
	assert.True(t, env2.Success)
	assert.Equal(t, "User updated successfully", env2.Message)

	got, err := env.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "after@example.com", got.Email)
	assert.Equal(t, originalHash, got.PasswordHash)

	// with a password: re-hashed
	resp, _ = env.do(t, http.MethodPut, "/users/"+itoa(u.ID), map[string]string{
		"name":     "After",
		"email":    "after@example.com",
		"password": "new-password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err = env.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, got.PasswordHash)
	assert.NoError(t, auth.VerifyPassword("new-password", got.PasswordHash))
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	u := env.seedUser(t, "One", "one@example.com")
	env.seedUser(t, "Two", "two@example.com")

	// another user's address is rejected
	resp, raw := env.do(t, http.MethodPut, "/users/"+itoa(u.ID), map[string]string{
		"name":  "One",
		"email": "two@example.com",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body httpx.ValidationBody
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body.Errors, "email")

	// keeping its own address is fine
	resp, _ = env.do(t, http.MethodPut, "/users/"+itoa(u.ID), map[string]string{
		"name":  "Renamed",
		"email": "one@example.com",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	u := env.seedUser(t, "Doomed", "doomed@example.com")

	resp, raw := env.do(t, http.MethodDelete, "/users/"+itoa(u.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "User deleted successfully", body["message"])

	resp, _ = env.do(t, http.MethodGet, "/users/"+itoa(u.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserPostsRelationship(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	author := env.seedUser(t, "Author", "author@example.com")
	bystander := env.seedUser(t, "Bystander", "bystander@example.com")

	env.seedPost(t, author.ID, "First")
	env.seedPost(t, author.ID, "Second")
	env.seedPost(t, author.ID, "Third")
	env.seedPost(t, bystander.ID, "Unrelated")

	resp, raw := env.do(t, http.MethodGet, "/users/"+itoa(author.ID)+"/posts", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.Post `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Data, 3)
	for _, p := range body.Data {
		assert.Equal(t, author.ID, p.UserID)
	}
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t, config.Config{Env: "test"})
	env.seedUser(t, "One", "one@example.com")
	env.seedUser(t, "Two", "two@example.com")
	env.seedUser(t, "Three", "three@example.com")

	resp, raw := env.do(t, http.MethodGet, "/users?per_page=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Data  []models.User   `json:"data"`
		Links httpx.PageLinks `json:"links"`
		Meta  httpx.PageMeta  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.LastPage)
	require.NotNil(t, page.Links.Next)

	// hashes stay out of the listing too
	assert.NotContains(t, string(raw), "password_hash")
}
