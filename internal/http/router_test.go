package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelist/internal/catalog"
	"reelist/internal/config"
	"reelist/internal/db"
	httpx "reelist/internal/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T, listsEnabled bool) (http.Handler, *gorm.DB) {
	t.Helper()

	gdb := db.NewTestDB(t)
	cfg := config.Config{ListsEnabled: listsEnabled}
	return httpx.NewRouter(cfg, gdb, zap.NewNop()), gdb
}

func seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	poster := "https://img.example/dune.jpg"
	require.NoError(t, gdb.Create(&catalog.Movie{ID: 1, Title: "Dune", Year: 2021, PosterURL: &poster}).Error)
	require.NoError(t, gdb.Create(&catalog.Movie{ID: 2, Title: "Stalker", Year: 1979}).Error)

	require.NoError(t, gdb.Create(&catalog.Director{ID: 10, Name: "Denis Villeneuve"}).Error)
	require.NoError(t, gdb.Create(&catalog.Genre{ID: 20, Name: "Sci-Fi"}).Error)
	require.NoError(t, gdb.Create(&catalog.MovieDetail{ID: 1, DirectorID: 10, GenreID: 20, Synopsis: " A spice saga. "}).Error)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetMovies(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodGet, "/movies", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestGetMovieLevels(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodGet, "/movies/1?level=basic", nil)
	require.Equal(t, http.StatusOK, w.Code)
	basic := decodeMap(t, w)
	assert.Equal(t, "Dune", basic["title"])
	assert.NotContains(t, basic, "director")

	w = do(t, h, http.MethodGet, "/movies/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	complexOut := decodeMap(t, w)
	assert.Equal(t, "Denis Villeneuve", complexOut["director"])
	assert.Equal(t, "Sci-Fi", complexOut["genre"])
	assert.Equal(t, "A spice saga.", complexOut["synopsis"])
}

func TestGetMovieNotFound(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	for _, path := range []string{"/movies/999", "/movies/999?level=basic"} {
		w := do(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Zero(t, w.Body.Len())
	}
}

// Movie 2 has no detail row: visible at basic level, hidden at complex.
func TestGetMovieDetailAsymmetry(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodGet, "/movies/2?level=basic", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodGet, "/movies/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestGetMovieInvalidID(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodGet, "/movies/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWatchlistFlow(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodPost, "/users/7/watchlist", map[string]any{"movie_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Added to watchlist", decodeMap(t, w)["message"])

	w = do(t, h, http.MethodPost, "/users/7/watchlist", map[string]any{"movie_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Already in watchlist", decodeMap(t, w)["message"])

	w = do(t, h, http.MethodGet, "/users/7/watchlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Dune", list[0]["title"])

	w = do(t, h, http.MethodDelete, "/users/7/watchlist/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed from watchlist", decodeMap(t, w)["message"])

	w = do(t, h, http.MethodGet, "/users/7/watchlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestWatchlistAddRequiresMovieID(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	w := do(t, h, http.MethodPost, "/users/7/watchlist", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "movie_id is required", decodeMap(t, w)["error"])
}

func TestViewedFlow(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	// on the watchlist first; recording a viewing must clear it
	w := do(t, h, http.MethodPost, "/users/7/watchlist", map[string]any{"movie_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, h, http.MethodPost, "/users/7/viewed", map[string]any{"movie_id": 1, "rating": 4})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Marked as viewed", decodeMap(t, w)["message"])

	w = do(t, h, http.MethodGet, "/users/7/watchlist", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, h, http.MethodPost, "/users/7/viewed", map[string]any{"movie_id": 1, "rating": 5})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Rating updated", decodeMap(t, w)["message"])

	w = do(t, h, http.MethodGet, "/users/7/viewed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, float64(5), list[0]["rating"])

	w = do(t, h, http.MethodDelete, "/users/7/viewed/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed from viewed", decodeMap(t, w)["message"])
}

func TestViewedRatingValidation(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	cases := []struct {
		name string
		body map[string]any
		want int
	}{
		{"zero", map[string]any{"movie_id": 1, "rating": 0}, http.StatusBadRequest},
		{"six", map[string]any{"movie_id": 1, "rating": 6}, http.StatusBadRequest},
		{"absent", map[string]any{"movie_id": 1}, http.StatusBadRequest},
		{"one", map[string]any{"movie_id": 1, "rating": 1}, http.StatusCreated},
		{"five", map[string]any{"movie_id": 2, "rating": 5}, http.StatusCreated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/users/7/viewed", tc.body)
			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusBadRequest {
				assert.Equal(t, "rating must be between 1 and 5", decodeMap(t, w)["error"])
			}
		})
	}
}

func TestListsDisabledServesTeapots(t *testing.T) {
	h, gdb := newTestServer(t, false)
	seed(t, gdb)

	// catalog stays live
	w := do(t, h, http.MethodGet, "/movies", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, c := range []struct{ method, path string }{
		{http.MethodGet, "/users/7/watchlist"},
		{http.MethodPost, "/users/7/watchlist"},
		{http.MethodDelete, "/users/7/watchlist/1"},
		{http.MethodGet, "/users/7/viewed"},
		{http.MethodPost, "/users/7/viewed"},
		{http.MethodDelete, "/users/7/viewed/1"},
	} {
		w := do(t, h, c.method, c.path, nil)
		assert.Equal(t, http.StatusTeapot, w.Code, fmt.Sprintf("%s %s", c.method, c.path))
	}
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "https://somewhere.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsCountsResponseBytes(t *testing.T) {
	h, gdb := newTestServer(t, true)
	seed(t, gdb)

	do(t, h, http.MethodGet, "/movies", nil)

	w := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decodeMap(t, w)
	assert.Greater(t, out["bytes_written"], float64(0))
}
