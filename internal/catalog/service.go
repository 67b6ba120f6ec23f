package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type Service struct {
	DB *gorm.DB
}

// List returns every movie as a summary. Order is whatever the store yields;
// callers must not rely on it.
func (s *Service) List(ctx context.Context) ([]MovieSummary, error) {
	var out []MovieSummary
	err := s.DB.WithContext(ctx).
		Model(&Movie{}).
		Select("id, title, year, poster_url").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBasic looks up a movie without touching the detail tables.
func (s *Service) GetBasic(ctx context.Context, id uint64) (MovieSummary, error) {
	var out MovieSummary
	err := s.DB.WithContext(ctx).
		Model(&Movie{}).
		Select("id, title, year, poster_url").
		Where("id = ?", id).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MovieSummary{}, ErrNotFound
	}
	if err != nil {
		return MovieSummary{}, err
	}
	return out, nil
}

type complexRow struct {
	ID        uint64
	Title     string
	Year      int
	PosterURL *string
	Director  string
	Genre     string
	Synopsis  string
}

// GetComplex joins detail, director and genre. The joins are inner: a movie
// without a detail row is not found at this level even when GetBasic sees it.
func (s *Service) GetComplex(ctx context.Context, id uint64) (MovieDetailView, error) {
	var row complexRow
	err := s.DB.WithContext(ctx).
		Model(&Movie{}).
		Select("movies.id, movies.title, movies.year, movies.poster_url, directors.name as director, genres.name as genre, movie_details.synopsis").
		Joins("inner join movie_details on movie_details.id = movies.id").
		Joins("inner join directors on directors.id = movie_details.director_id").
		Joins("inner join genres on genres.id = movie_details.genre_id").
		Where("movies.id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MovieDetailView{}, ErrNotFound
	}
	if err != nil {
		return MovieDetailView{}, err
	}

	return MovieDetailView{
		ID:        row.ID,
		Title:     row.Title,
		Year:      row.Year,
		PosterURL: row.PosterURL,
		Director:  trimmed(row.Director),
		Genre:     trimmed(row.Genre),
		Synopsis:  trimmed(row.Synopsis),
	}, nil
}

// trimmed strips padding whitespace and turns blank values into nil so they
// serialize as JSON null.
func trimmed(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
