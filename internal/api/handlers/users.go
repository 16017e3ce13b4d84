package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/baharkarakas/blog-backend/internal/api/httpx"
	"github.com/baharkarakas/blog-backend/internal/metrics"
	"github.com/baharkarakas/blog-backend/internal/models"
	"github.com/baharkarakas/blog-backend/internal/repository"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type UserHandler struct {
	users    *services.UserService
	posts    *services.PostService
	validate *validator.Validate
}

func NewUserHandler(users *services.UserService, posts *services.PostService, validate *validator.Validate) *UserHandler {
	return &UserHandler{users: users, posts: posts, validate: validate}
}

type createUserReq struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type updateUserReq struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

var emailTakenErrs = map[string][]string{"email": {"The email has already been taken."}}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := httpx.PageParams(r)
	users, total, err := h.users.List(r.Context(), page, perPage)
	if err != nil {
		slog.Error("list users", "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "User list fail!")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.NewPage(r, users, page, perPage, total))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationErrors(w, fieldErrors(err))
		return
	}

	_, err := h.users.Create(r.Context(), services.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, repository.ErrEmailTaken) {
		httpx.WriteValidationErrors(w, emailTakenErrs)
		return
	}
	if err != nil {
		slog.Error("create user", "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "User store fail!")
		return
	}
	metrics.UsersCreated.Inc()
	httpx.WriteEnvelope(w, http.StatusOK, true, "User store successfully")
}

func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	u, err := h.users.Get(r.Context(), id)
	if err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

// ShowPosts returns the user's post collection, newest first.
func (h *UserHandler) ShowPosts(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if _, err := h.users.Get(r.Context(), id); err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	posts, err := h.posts.ListByUser(r.Context(), id)
	if err != nil {
		slog.Error("list user posts", "id", id, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Post list fail!")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"data": posts})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if _, err := h.users.Get(r.Context(), id); err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}

	var req updateUserReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationErrors(w, fieldErrors(err))
		return
	}

	_, err := h.users.Update(r.Context(), id, services.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if errors.Is(err, repository.ErrEmailTaken) {
		httpx.WriteValidationErrors(w, emailTakenErrs)
		return
	}
	if err != nil {
		slog.Error("update user", "id", id, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "User update failed!")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, true, "User updated successfully")
}

// Delete answers with a bare message body, no success flag.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	if _, err := h.users.Get(r.Context(), id); err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		slog.Error("delete user", "id", id, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "User delete fail!")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return 0, false
	}
	return id, true
}
