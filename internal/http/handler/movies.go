package handler

import (
	"errors"
	"net/http"
	"strconv"

	"reelist/internal/catalog"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	Svc    *catalog.Service
	Logger *zap.Logger
}

func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Svc.List(r.Context())
	if err != nil {
		h.Logger.Error("list movies", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if movies == nil {
		movies = []catalog.MovieSummary{}
	}
	writeJSON(w, http.StatusOK, movies)
}

// Get serves a single movie at the requested detail level. Complex is the
// default and joins through movie_details; a movie without a detail row is
// 404 here even though level=basic finds it.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	var out any
	if r.URL.Query().Get("level") == "basic" {
		out, err = h.Svc.GetBasic(r.Context(), id)
	} else {
		out, err = h.Svc.GetComplex(r.Context(), id)
	}

	if errors.Is(err, catalog.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		h.Logger.Error("get movie", zap.Uint64("movie_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
