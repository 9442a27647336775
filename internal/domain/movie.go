package domain

import (
	"strings"
	"time"
)

// Movie is the denormalized projection held in the full-text index.
// One document per movie id; written synchronously at create/update/delete.
type Movie struct {
	ID          int64
	Title       string
	Image       string
	Description string
	ReleaseDate int // release year
	CreatedBy   int64
	Duration    int // minutes, 0 when unknown
	CreatedAt   time.Time
	Genres      []string
	Categories  []string
}

// Candidate is a movie summary produced by the similarity query,
// pending popularity re-ranking. Never persisted.
type Candidate struct {
	ID          int64
	Title       string
	Image       string
	ReleaseDate int
	Description string
	Categories  []string
	Genres      []string
	Score       float64 // blended relevance score from the index
	ViewCount   int64
}

// RelatedMovies is the assembled related-movies payload: the re-ranked,
// truncated candidate list plus the category union across it.
type RelatedMovies struct {
	Movies        []Candidate
	AllCategories []string
}

// MovieDetails is the enriched single-movie view.
type MovieDetails struct {
	Movie
	GenreIDs      []int64
	CreatorName   string
	AverageRating *float64
	UserRating    float64
}

// MovieSummary is a catalogue listing row.
type MovieSummary struct {
	Movie
	AverageRating *float64
}

type Genre struct {
	ID   int64
	Name string
}

type Comment struct {
	ID        int64
	MovieID   int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	AuthorFirstName string
	AuthorLastName  string
}

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

const DefaultImage = "default-image.jpg"

// ResolveImageURL turns a stored image value into an absolute URL.
// Fully-qualified values pass through unchanged; bare file names are
// served from the application's /images path.
func ResolveImageURL(baseURL, image string) string {
	if image == "" {
		image = DefaultImage
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return strings.TrimRight(baseURL, "/") + "/images/" + image
}
