package db

import (
	"fmt"

	"reelist/internal/catalog"
	"reelist/internal/lists"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger),
	})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&catalog.Movie{},
		&catalog.MovieDetail{},
		&catalog.Director{},
		&catalog.Genre{},
		&lists.WatchlistEntry{},
		&lists.ViewedEntry{},
	); err != nil {
		return err
	}

	// List reads are always per-user ordered by recency.
	stmts := []string{
		`create index if not exists idx_watchlist_user_added on watchlist_entries(user_id, added_at desc);`,
		`create index if not exists idx_viewed_user_viewed on viewed_entries(user_id, viewed_at desc);`,
		`create index if not exists idx_movie_details_director on movie_details(director_id);`,
		`create index if not exists idx_movie_details_genre on movie_details(genre_id);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
