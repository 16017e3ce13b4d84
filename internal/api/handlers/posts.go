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

type PostHandler struct {
	svc      *services.PostService
	validate *validator.Validate
}

func NewPostHandler(svc *services.PostService, validate *validator.Validate) *PostHandler {
	return &PostHandler{svc: svc, validate: validate}
}

type createPostReq struct {
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"required"`
	UserID int64  `json:"user_id" validate:"required"`
	Status int16  `json:"status" validate:"oneof=0 1"`
}

// updatePostReq has no user_id: the owner is immutable after creation.
type updatePostReq struct {
	Title  string `json:"title" validate:"required,max=255"`
	Body   string `json:"body" validate:"required"`
	Status int16  `json:"status" validate:"oneof=0 1"`
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := httpx.PageParams(r)
	posts, total, err := h.svc.List(r.Context(), page, perPage)
	if err != nil {
		slog.Error("list posts", "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Post list fail!")
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.NewPage(r, posts, page, perPage, total))
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationErrors(w, fieldErrors(err))
		return
	}

	_, err := h.svc.Create(r.Context(), services.CreatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		UserID: req.UserID,
		Status: models.PostStatus(req.Status),
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		httpx.WriteValidationErrors(w, map[string][]string{
			"user_id": {"The selected user_id is invalid."},
		})
		return
	}
	if err != nil {
		slog.Error("create post", "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Post save fail!")
		return
	}
	metrics.PostsCreated.Inc()
	httpx.WriteEnvelope(w, http.StatusCreated, true, "Post saved successfully")
}

func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	// load-or-404 before any validation work
	if _, err := h.svc.Get(r.Context(), id); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	var req updatePostReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationErrors(w, fieldErrors(err))
		return
	}

	_, err := h.svc.Update(r.Context(), id, services.UpdatePostInput{
		Title:  req.Title,
		Body:   req.Body,
		Status: models.PostStatus(req.Status),
	})
	if err != nil {
		slog.Error("update post", "id", id, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Post update fail!")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, true, "Post updated successfully")
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrPostNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("delete post", "id", id, "err", err)
		httpx.WriteEnvelope(w, http.StatusInternalServerError, false, "Post delete fail!")
		return
	}
	httpx.WriteEnvelope(w, http.StatusOK, true, "Post deleted successfully")
}

func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}
