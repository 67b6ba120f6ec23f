package handler

import (
	"net/http"
	"strconv"

	"reelist/internal/lists"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func userIDParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	uid, err := strconv.ParseUint(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return uid, true
}

// removeFromList backs both DELETE routes. Removal never distinguishes
// "removed" from "was not present".
func removeFromList(w http.ResponseWriter, r *http.Request, svc *lists.Service, logger *zap.Logger, list lists.ListName) {
	uid, ok := userIDParam(w, r)
	if !ok {
		return
	}
	mid, err := strconv.ParseUint(chi.URLParam(r, "movieID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	if err := svc.RemoveFromList(r.Context(), uid, mid, list); err != nil {
		logger.Error("remove from list",
			zap.String("list", string(list)),
			zap.Uint64("user_id", uid),
			zap.Uint64("movie_id", mid),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeMessage(w, http.StatusOK, "Removed from "+string(list))
}
