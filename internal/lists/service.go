package lists

import (
	"context"
	"errors"
	"time"

	"reelist/internal/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnknownList = errors.New("unknown list")

// Outcome is the typed result of a list mutation. Callers map these to HTTP
// responses; none of them is an error.
type Outcome string

const (
	OutcomeAdded          Outcome = "added"
	OutcomeAlreadyPresent Outcome = "already_present"
	OutcomeCreated        Outcome = "created"
	OutcomeUpdated        Outcome = "updated"
)

// ListName selects a list for the shared removal path. Deletion dispatches on
// this closed set; the name is never spliced into SQL.
type ListName string

const (
	ListWatchlist ListName = "watchlist"
	ListViewed    ListName = "viewed"
)

type Service struct {
	DB *gorm.DB
}

// Watchlist returns the user's to-watch movies, most recently added first.
func (s *Service) Watchlist(ctx context.Context, userID uint64) ([]catalog.MovieSummary, error) {
	var out []catalog.MovieSummary
	err := s.DB.WithContext(ctx).
		Model(&catalog.Movie{}).
		Select("movies.id, movies.title, movies.year, movies.poster_url").
		Joins("join watchlist_entries w on w.movie_id = movies.id").
		Where("w.user_id = ?", userID).
		Order("w.added_at desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AddToWatchlist inserts the pair, resolving a duplicate through the unique
// constraint instead of surfacing it as an error.
func (s *Service) AddToWatchlist(ctx context.Context, userID, movieID uint64) (Outcome, error) {
	entry := WatchlistEntry{UserID: userID, MovieID: movieID, AddedAt: time.Now()}
	res := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return OutcomeAlreadyPresent, nil
	}
	return OutcomeAdded, nil
}

// Viewed returns the user's rated history, most recently viewed first.
func (s *Service) Viewed(ctx context.Context, userID uint64) ([]ViewedMovie, error) {
	var out []ViewedMovie
	err := s.DB.WithContext(ctx).
		Model(&catalog.Movie{}).
		Select("movies.id, movies.title, movies.year, movies.poster_url, v.rating").
		Joins("join viewed_entries v on v.movie_id = movies.id").
		Where("v.user_id = ?", userID).
		Order("v.viewed_at desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordViewed inserts a viewed entry or, when the pair already exists,
// replaces its rating and refreshes the timestamp. A first-time record also
// drops the pair from the watchlist; insert and cleanup commit together.
// Rating bounds are the caller's responsibility.
func (s *Service) RecordViewed(ctx context.Context, userID, movieID uint64, rating int) (Outcome, error) {
	out := OutcomeUpdated

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		entry := ViewedEntry{UserID: userID, MovieID: movieID, Rating: rating, ViewedAt: now}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 1 {
			out = OutcomeCreated
			// the pair is watched now, a pending watchlist entry is stale
			return tx.Where("user_id = ? AND movie_id = ?", userID, movieID).
				Delete(&WatchlistEntry{}).Error
		}

		return tx.Model(&ViewedEntry{}).
			Where("user_id = ? AND movie_id = ?", userID, movieID).
			Updates(map[string]any{"rating": rating, "viewed_at": now}).Error
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// RemoveFromList deletes the pair from the named list. Absent rows are a
// no-op; callers get no removed/not-present distinction.
func (s *Service) RemoveFromList(ctx context.Context, userID, movieID uint64, list ListName) error {
	q := s.DB.WithContext(ctx).Where("user_id = ? AND movie_id = ?", userID, movieID)
	switch list {
	case ListWatchlist:
		return q.Delete(&WatchlistEntry{}).Error
	case ListViewed:
		return q.Delete(&ViewedEntry{}).Error
	default:
		return ErrUnknownList
	}
}
