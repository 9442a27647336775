package search

import (
	"context"
	"strings"

	bleve "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/filmgrid/movie-service/internal/application/movie"
	"github.com/filmgrid/movie-service/internal/domain"
)

func listQuery(f movie.ListFilter) query.Query {
	bq := bleve.NewBooleanQuery()
	filtered := false

	if f.Genre != "" {
		filtered = true
		tq := bleve.NewTermQuery(f.Genre)
		tq.SetField("genres")
		bq.AddMust(tq)
	}

	if f.CreatedBy != 0 {
		filtered = true
		v := float64(f.CreatedBy)
		inclusive := true
		nq := bleve.NewNumericRangeInclusiveQuery(&v, &v, &inclusive, &inclusive)
		nq.SetField("createdBy")
		bq.AddMust(nq)
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		filtered = true
		// Free text matches the description fuzzily or the title by prefix.
		inner := bleve.NewBooleanQuery()

		dq := bleve.NewMatchQuery(q)
		dq.SetField("description")
		dq.SetFuzziness(1)
		inner.AddShould(dq)

		pq := bleve.NewPrefixQuery(strings.ToLower(q))
		pq.SetField("title")
		inner.AddShould(pq)

		bq.AddMust(inner)
	}

	if !filtered {
		return bleve.NewMatchAllQuery()
	}
	return bq
}

// List pages through the catalogue, newest first, with optional genre,
// creator and free-text filters. Returns the page plus the total hit count.
func (s *Index) List(ctx context.Context, f movie.ListFilter) ([]domain.Movie, int, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 18
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
	from := (f.Page - 1) * f.PageSize

	req := bleve.NewSearchRequestOptions(listQuery(f), f.PageSize, from, false)
	req.Fields = []string{"*"}
	req.SortBy([]string{"-createdAt"})

	res, err := s.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Movie, 0, len(res.Hits))
	for _, hit := range res.Hits {
		m, err := s.movieFromFields(hit.ID, hit.Fields)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, int(res.Total), nil
}
