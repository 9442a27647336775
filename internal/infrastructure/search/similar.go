package search

import (
	"context"

	bleve "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/filmgrid/movie-service/internal/domain"
)

// Clause weights for the similarity query. Title similarity is the strongest
// signal, shared categories come next, shared genres are the baseline.
const (
	boostTitle    = 2.0
	boostCategory = 1.5
	boostGenre    = 1.0
)

// similarityQuery builds the disjunctive candidate query for one source
// movie: should-clauses per signal, must_not on the source document itself.
// Kept separate from Similar so the ranking policy is testable without an
// index search.
func similarityQuery(src *domain.Movie) query.Query {
	bq := bleve.NewBooleanQuery()
	bq.AddMustNot(bleve.NewDocIDQuery([]string{docID(src.ID)}))

	if src.Title != "" {
		mq := bleve.NewMatchQuery(src.Title)
		mq.SetField("title")
		mq.SetBoost(boostTitle)
		bq.AddShould(mq)
	}

	for _, c := range src.Categories {
		if c == "" {
			continue
		}
		tq := bleve.NewTermQuery(c)
		tq.SetField("categories")
		tq.SetBoost(boostCategory)
		bq.AddShould(tq)
	}

	for _, g := range src.Genres {
		if g == "" {
			continue
		}
		tq := bleve.NewTermQuery(g)
		tq.SetField("genres")
		tq.SetBoost(boostGenre)
		bq.AddShould(tq)
	}

	return bq
}

// Similar returns up to limit candidates ordered by blended relevance score,
// newer release years first among equally relevant hits. The source movie is
// never part of the result.
func (s *Index) Similar(ctx context.Context, src *domain.Movie, limit int) ([]domain.Candidate, error) {
	req := bleve.NewSearchRequestOptions(similarityQuery(src), limit, 0, false)
	req.Fields = []string{"*"}
	req.SortBy([]string{"-_score", "-releaseDate"})

	res, err := s.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Candidate, 0, len(res.Hits))
	for _, hit := range res.Hits {
		c, err := s.candidateFromFields(hit.ID, hit.Score, hit.Fields)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
