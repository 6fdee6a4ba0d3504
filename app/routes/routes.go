// Package routes wires controllers, middleware and the metrics endpoint into
// one HTTP handler.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"bloghub/app/config"
	"bloghub/app/controllers"
	"bloghub/app/middleware"
	"bloghub/app/repositories"
	"bloghub/app/services"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Store    *repositories.Store
	Config   *config.Config
	Logger   zerolog.Logger
	Registry *prometheus.Registry
}

// NewRouter builds the complete HTTP handler.
func NewRouter(deps Dependencies) (http.Handler, error) {
	passwordHash, err := resolvePasswordHash(deps.Config.Auth)
	if err != nil {
		return nil, err
	}

	blogs := deps.Store.Blogs()
	posts := deps.Store.Posts()
	videos := deps.Store.Videos()

	blogController := controllers.NewBlogController(services.NewBlogService(blogs))
	postController := controllers.NewPostController(services.NewPostService(posts, blogs))
	videoController := controllers.NewVideoController(services.NewVideoService(videos, deps.Config.Auth.ProtectVideos))
	testingController := controllers.NewTestingController(services.NewTestingService(deps.Store))

	metrics := middleware.NewMetrics(deps.Registry)

	router := mux.NewRouter()
	router.Use(metrics.Middleware)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	router.HandleFunc("/", controllers.Home).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.BasicAuth(deps.Config.Auth.Username, passwordHash))

	apiBlogs := api.PathPrefix("/blogs").Subrouter()
	apiBlogs.HandleFunc("", blogController.Index).Methods("GET")
	apiBlogs.HandleFunc("", blogController.Create).Methods("POST")
	apiBlogs.HandleFunc("/{id}", blogController.Show).Methods("GET")
	apiBlogs.HandleFunc("/{id}", blogController.Update).Methods("PUT")
	apiBlogs.HandleFunc("/{id}", blogController.Delete).Methods("DELETE")
	apiBlogs.HandleFunc("", methodNotAllowed)
	apiBlogs.HandleFunc("/{id}", methodNotAllowed)

	apiPosts := api.PathPrefix("/posts").Subrouter()
	apiPosts.HandleFunc("", postController.Index).Methods("GET")
	apiPosts.HandleFunc("", postController.Create).Methods("POST")
	apiPosts.HandleFunc("/{id}", postController.Show).Methods("GET")
	apiPosts.HandleFunc("/{id}", postController.Update).Methods("PUT")
	apiPosts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")
	apiPosts.HandleFunc("", methodNotAllowed)
	apiPosts.HandleFunc("/{id}", methodNotAllowed)

	apiVideos := api.PathPrefix("/videos").Subrouter()
	apiVideos.HandleFunc("", videoController.Index).Methods("GET")
	apiVideos.HandleFunc("", videoController.Create).Methods("POST")
	apiVideos.HandleFunc("/{id}", videoController.Show).Methods("GET")
	apiVideos.HandleFunc("/{id}", videoController.Update).Methods("PUT")
	apiVideos.HandleFunc("/{id}", videoController.Delete).Methods("DELETE")
	apiVideos.HandleFunc("", methodNotAllowed)
	apiVideos.HandleFunc("/{id}", methodNotAllowed)

	api.HandleFunc("/testing/all-data", testingController.ClearAll).Methods("DELETE")
	api.HandleFunc("/testing/all-data", methodNotAllowed)

	var handler http.Handler = router
	handler = trimTrailingSlash(handler)
	handler = middleware.RateLimit(deps.Config.RateLimit.RPS, deps.Config.RateLimit.Burst)(handler)
	handler = middleware.Recoverer(deps.Logger)(handler)
	handler = middleware.Logger(deps.Logger)(handler)
	handler = middleware.RequestID(handler)
	return handler, nil
}

// NewServer returns an http.Server for handler using the configured address
// and timeouts.
func NewServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func resolvePasswordHash(auth config.AuthConfig) ([]byte, error) {
	if auth.PasswordHash != "" {
		return []byte(auth.PasswordHash), nil
	}
	hash, err := middleware.HashPassword(auth.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

// methodNotAllowed answers 405 for known paths. Registered after the method
// routes of a path, it also catches methods mux would report as not found.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// trimTrailingSlash lets "/blogs/" and "/blogs" reach the same route.
func trimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			r2 := r.Clone(r.Context())
			r2.URL.Path = strings.TrimRight(p, "/")
			if r2.URL.Path == "" {
				r2.URL.Path = "/"
			}
			r2.URL.RawPath = ""
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
