package search

import (
	"strconv"
	"time"

	"github.com/filmgrid/movie-service/internal/domain"
)

// Stored fields come back loosely typed: numbers as float64, multi-valued
// strings as []interface{} but single values as a bare string.

func strField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func strSliceField(fields map[string]interface{}, key string) []string {
	switch v := fields[key].(type) {
	case string:
		return []string{v}
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func numField(fields map[string]interface{}, key string) float64 {
	if v, ok := fields[key].(float64); ok {
		return v
	}
	return 0
}

func timeField(fields map[string]interface{}, key string) time.Time {
	if v, ok := fields[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (s *Index) movieFromFields(id string, fields map[string]interface{}) (*domain.Movie, error) {
	movieID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, err
	}
	return &domain.Movie{
		ID:          movieID,
		Title:       strField(fields, "title"),
		Image:       strField(fields, "image"),
		Description: strField(fields, "description"),
		ReleaseDate: int(numField(fields, "releaseDate")),
		CreatedBy:   int64(numField(fields, "createdBy")),
		Duration:    int(numField(fields, "duration")),
		CreatedAt:   timeField(fields, "createdAt"),
		Genres:      strSliceField(fields, "genres"),
		Categories:  strSliceField(fields, "categories"),
	}, nil
}

func (s *Index) candidateFromFields(id string, score float64, fields map[string]interface{}) (domain.Candidate, error) {
	movieID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.Candidate{}, err
	}
	return domain.Candidate{
		ID:          movieID,
		Title:       strField(fields, "title"),
		Image:       domain.ResolveImageURL(s.baseURL, strField(fields, "image")),
		ReleaseDate: int(numField(fields, "releaseDate")),
		Description: strField(fields, "description"),
		Categories:  strSliceField(fields, "categories"),
		Genres:      strSliceField(fields, "genres"),
		Score:       score,
	}, nil
}
