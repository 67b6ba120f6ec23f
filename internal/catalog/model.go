package catalog

// Movie is the catalog row. This service never writes movies; the catalog is
// loaded out of band.
type Movie struct {
	ID        uint64  `gorm:"primaryKey"`
	Title     string  `gorm:"type:text;not null"`
	Year      int     `gorm:"not null"`
	PosterURL *string `gorm:"type:text"`
}

// MovieDetail extends a Movie one-to-one, keyed by the movie id.
// Not every movie has one.
type MovieDetail struct {
	ID         uint64 `gorm:"primaryKey"`
	DirectorID uint64 `gorm:"index;not null"`
	GenreID    uint64 `gorm:"index;not null"`
	Synopsis   string `gorm:"type:text"`
}

type Director struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null"`
}

type Genre struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:text;not null"`
}

// MovieSummary is the basic read shape shared by the catalog list, the basic
// detail level, and the per-user lists.
type MovieSummary struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	PosterURL *string `json:"poster_url"`
}

// MovieDetailView is the complex read shape. Joined fields are null when the
// stored value is absent or blank.
type MovieDetailView struct {
	ID        uint64  `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	PosterURL *string `json:"poster_url"`
	Director  *string `json:"director"`
	Genre     *string `json:"genre"`
	Synopsis  *string `json:"synopsis"`
}
