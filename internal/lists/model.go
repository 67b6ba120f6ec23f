package lists

import "time"

// WatchlistEntry marks a movie a user intends to watch. The composite key
// keeps the pair unique; a duplicate add resolves through the conflict path.
type WatchlistEntry struct {
	UserID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	MovieID uint64    `gorm:"primaryKey;autoIncrement:false"`
	AddedAt time.Time `gorm:"not null"`
}

// ViewedEntry records a watched movie with its rating. ViewedAt is refreshed
// whenever the rating is re-recorded.
type ViewedEntry struct {
	UserID   uint64    `gorm:"primaryKey;autoIncrement:false"`
	MovieID  uint64    `gorm:"primaryKey;autoIncrement:false"`
	Rating   int       `gorm:"not null"`
	ViewedAt time.Time `gorm:"not null"`
}

// ViewedMovie is the read shape for a user's viewed list.
type ViewedMovie struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	PosterURL *string `json:"poster_url"`
	Rating    int     `json:"rating"`
}
