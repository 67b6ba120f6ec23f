package handler

import (
	"encoding/json"
	"net/http"

	"reelist/internal/catalog"
	"reelist/internal/lists"

	"go.uber.org/zap"
)

type WatchlistHandler struct {
	Svc    *lists.Service
	Logger *zap.Logger
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userIDParam(w, r)
	if !ok {
		return
	}

	movies, err := h.Svc.Watchlist(r.Context(), uid)
	if err != nil {
		h.Logger.Error("list watchlist", zap.Uint64("user_id", uid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if movies == nil {
		movies = []catalog.MovieSummary{}
	}
	writeJSON(w, http.StatusOK, movies)
}

type addWatchlistReq struct {
	MovieID uint64 `json:"movie_id" validate:"required"`
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req addWatchlistReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if msg := checkRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	outcome, err := h.Svc.AddToWatchlist(r.Context(), uid, req.MovieID)
	if err != nil {
		h.Logger.Error("add to watchlist",
			zap.Uint64("user_id", uid),
			zap.Uint64("movie_id", req.MovieID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if outcome == lists.OutcomeAlreadyPresent {
		writeMessage(w, http.StatusOK, "Already in watchlist")
		return
	}
	writeMessage(w, http.StatusCreated, "Added to watchlist")
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	removeFromList(w, r, h.Svc, h.Logger, lists.ListWatchlist)
}
