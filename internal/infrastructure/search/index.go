package search

import (
	"context"
	"strconv"

	bleve "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/filmgrid/movie-service/internal/domain"
)

// Index wraps the full-text movie index. It is constructed once by the
// composition root and closed at shutdown; handlers never touch bleve
// directly.
type Index struct {
	idx     bleve.Index
	baseURL string
}

// Open opens the index at path, creating it with the movie mapping when it
// does not exist yet. baseURL is the public prefix used to resolve relative
// image names.
func Open(path, baseURL string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(path, buildMapping())
	}
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx, baseURL: baseURL}, nil
}

// OpenMemOnly builds an in-memory index. Used in dev mode and tests.
func OpenMemOnly(baseURL string) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx, baseURL: baseURL}, nil
}

func (s *Index) Close() error { return s.idx.Close() }

func buildMapping() mapping.IndexMapping {
	doc := bleve.NewDocumentMapping()

	text := bleve.NewTextFieldMapping()
	doc.AddFieldMappingsAt("title", text)
	doc.AddFieldMappingsAt("description", text)

	// Tags are exact-match filterable: keyword analyzer, no tokenization.
	kw := bleve.NewTextFieldMapping()
	kw.Analyzer = keyword.Name
	doc.AddFieldMappingsAt("genres", kw)
	doc.AddFieldMappingsAt("categories", kw)

	num := bleve.NewNumericFieldMapping()
	doc.AddFieldMappingsAt("releaseDate", num)
	doc.AddFieldMappingsAt("createdBy", num)
	doc.AddFieldMappingsAt("duration", num)

	dt := bleve.NewDateTimeFieldMapping()
	doc.AddFieldMappingsAt("createdAt", dt)

	// Stored for display only.
	img := bleve.NewTextFieldMapping()
	img.Index = false
	doc.AddFieldMappingsAt("image", img)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func docID(id int64) string { return strconv.FormatInt(id, 10) }

func docFields(m *domain.Movie) map[string]interface{} {
	return map[string]interface{}{
		"title":       m.Title,
		"image":       m.Image,
		"description": m.Description,
		"releaseDate": m.ReleaseDate,
		"createdBy":   m.CreatedBy,
		"duration":    m.Duration,
		"createdAt":   m.CreatedAt,
		"genres":      m.Genres,
		"categories":  m.Categories,
	}
}

// IndexMovie writes the denormalized projection of a movie. Upserts by doc id.
func (s *Index) IndexMovie(ctx context.Context, m *domain.Movie) error {
	return s.idx.Index(docID(m.ID), docFields(m))
}

// DeleteMovie removes a movie's document. Deleting an absent id is a no-op.
func (s *Index) DeleteMovie(ctx context.Context, id int64) error {
	return s.idx.Delete(docID(id))
}

// Get fetches a single movie document by id.
func (s *Index) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	q := bleve.NewDocIDQuery([]string{docID(id)})
	req := bleve.NewSearchRequestOptions(q, 1, 0, false)
	req.Fields = []string{"*"}

	res, err := s.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(res.Hits) == 0 {
		return nil, domain.ErrNotFound("Movie not found")
	}
	return s.movieFromFields(res.Hits[0].ID, res.Hits[0].Fields)
}
