package handler

import (
	"encoding/json"
	"net/http"

	"reelist/internal/lists"

	"go.uber.org/zap"
)

type ViewedHandler struct {
	Svc    *lists.Service
	Logger *zap.Logger
}

func (h *ViewedHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userIDParam(w, r)
	if !ok {
		return
	}

	movies, err := h.Svc.Viewed(r.Context(), uid)
	if err != nil {
		h.Logger.Error("list viewed", zap.Uint64("user_id", uid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if movies == nil {
		movies = []lists.ViewedMovie{}
	}
	writeJSON(w, http.StatusOK, movies)
}

type recordViewedReq struct {
	MovieID uint64 `json:"movie_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// Add records or re-records a viewing. A first record answers 201 and pulls
// the movie off the watchlist; a repeat answers 200 with the rating updated.
func (h *ViewedHandler) Add(w http.ResponseWriter, r *http.Request) {
	uid, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var req recordViewedReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if msg := checkRequest(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	outcome, err := h.Svc.RecordViewed(r.Context(), uid, req.MovieID, req.Rating)
	if err != nil {
		h.Logger.Error("record viewed",
			zap.Uint64("user_id", uid),
			zap.Uint64("movie_id", req.MovieID),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if outcome == lists.OutcomeUpdated {
		writeMessage(w, http.StatusOK, "Rating updated")
		return
	}
	writeMessage(w, http.StatusCreated, "Marked as viewed")
}

func (h *ViewedHandler) Remove(w http.ResponseWriter, r *http.Request) {
	removeFromList(w, r, h.Svc, h.Logger, lists.ListViewed)
}
