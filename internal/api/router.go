package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/blog-backend/internal/api/handlers"
	"github.com/baharkarakas/blog-backend/internal/auth"
	"github.com/baharkarakas/blog-backend/internal/config"
	"github.com/baharkarakas/blog-backend/internal/middleware"
	"github.com/baharkarakas/blog-backend/internal/services"
)

type RouterDeps struct {
	Cfg     config.Config
	UserSvc *services.UserService
	PostSvc *services.PostService
	TM      *auth.TokenManager
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	validate := handlers.NewValidator()
	posts := handlers.NewPostHandler(deps.PostSvc, validate)
	users := handlers.NewUserHandler(deps.UserSvc, deps.PostSvc, validate)
	login := handlers.NewAuthHandler(deps.TM, deps.UserSvc)

	am := middleware.NewAuthMiddleware(deps.TM)
	guard := func(next http.Handler) http.Handler { return next }
	if deps.Cfg.AuthRequired {
		guard = am.RequireAuth
	}

	r.Post("/auth/login", login.Login)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Get("/{id}", posts.Show)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/", posts.Create)
			r.Put("/{id}", posts.Update)
			r.Delete("/{id}", posts.Delete)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", users.List)
		r.Get("/{id}", users.Show)
		r.Get("/{id}/posts", users.ShowPosts)
		r.Post("/", users.Create)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Put("/{id}", users.Update)
			r.Delete("/{id}", users.Delete)
		})
	})

	return r
}
