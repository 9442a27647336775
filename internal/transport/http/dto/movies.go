package dto

// CreateMovieReq is the authenticated movie creation payload.
type CreateMovieReq struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Image       string   `json:"image" validate:"omitempty,max=500"`
	Description string   `json:"description" validate:"required,min=1"`
	ReleaseDate int      `json:"releaseDate" validate:"required,gte=1888"`
	Duration    int      `json:"duration" validate:"omitempty,gte=0"`
	Genres      []int64  `json:"genres" validate:"required,min=1,dive,gt=0"`
	Categories  []string `json:"categories" validate:"omitempty,dive,min=1"`
}

// UpdateMovieReq carries partial updates; absent fields stay unchanged.
type UpdateMovieReq struct {
	Title       *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Image       *string   `json:"image" validate:"omitempty,max=500"`
	Description *string   `json:"description" validate:"omitempty,min=1"`
	ReleaseDate *int      `json:"releaseDate" validate:"omitempty,gte=1888"`
	Duration    *int      `json:"duration" validate:"omitempty,gte=0"`
	Genres      *[]int64  `json:"genres" validate:"omitempty,min=1,dive,gt=0"`
	Categories  *[]string `json:"categories" validate:"omitempty,dive,min=1"`
}

type RateMovieReq struct {
	Score float64 `json:"score" validate:"gte=0,lte=5"`
}

type CommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// MovieResp is a single catalogue entry.
type MovieResp struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Image         string   `json:"image"`
	ReleaseDate   int      `json:"releaseDate"`
	Description   string   `json:"description"`
	Duration      int      `json:"duration,omitempty"`
	Categories    []string `json:"categories"`
	Genres        []string `json:"genres"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

// MovieDetailsResp adds the viewer-specific fields.
type MovieDetailsResp struct {
	MovieResp
	GenreIDs    []int64 `json:"genreIds"`
	CreatedBy   int64   `json:"createdBy"`
	CreatorName string  `json:"creatorName"`
	UserRating  float64 `json:"userRating"`
}

// RelatedMovieResp is one re-ranked recommendation.
type RelatedMovieResp struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	ReleaseDate int      `json:"releaseDate"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Genres      []string `json:"genres"`
	ViewCount   int64    `json:"viewCount"`
}

type RelatedResp struct {
	Movies        []RelatedMovieResp `json:"movies"`
	AllCategories []string           `json:"allCategories"`
}

type MovieListResp struct {
	Movies   []MovieResp `json:"movies"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
	Total    int         `json:"total"`
}

type GenreResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CommentResp struct {
	ID        int64  `json:"id"`
	MovieID   int64  `json:"movieId"`
	UserID    int64  `json:"userId"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
