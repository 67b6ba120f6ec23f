package http

import (
	"net/http"

	"reelist/internal/catalog"
	"reelist/internal/config"
	"reelist/internal/http/handler"
	mw "reelist/internal/http/middleware"
	"reelist/internal/lists"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(logger))

	// browse/list surface is open to any origin unless narrowed by config
	origins := cfg.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(mw.CORS(origins, cfg.CORSAllowCredentials))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/metrics", handler.Metrics)

	movieH := &handler.MovieHandler{Svc: &catalog.Service{DB: db}, Logger: logger}
	r.Get("/movies", movieH.List)
	r.Get("/movies/{id}", movieH.Get)

	if !cfg.ListsEnabled {
		r.Route("/users/{userID}", func(r chi.Router) {
			r.HandleFunc("/watchlist", listsDisabled)
			r.HandleFunc("/watchlist/{movieID}", listsDisabled)
			r.HandleFunc("/viewed", listsDisabled)
			r.HandleFunc("/viewed/{movieID}", listsDisabled)
		})
		return r
	}

	listSvc := &lists.Service{DB: db}
	watchH := &handler.WatchlistHandler{Svc: listSvc, Logger: logger}
	viewedH := &handler.ViewedHandler{Svc: listSvc, Logger: logger}

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/watchlist", watchH.List)
		r.Post("/watchlist", watchH.Add)
		r.Delete("/watchlist/{movieID}", watchH.Remove)

		r.Get("/viewed", viewedH.List)
		r.Post("/viewed", viewedH.Add)
		r.Delete("/viewed/{movieID}", viewedH.Remove)
	})

	return r
}

func listsDisabled(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "lists are not enabled on this instance", http.StatusTeapot)
}
