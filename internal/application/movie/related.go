package movie

import (
	"context"
	"sort"

	zlog "github.com/rs/zerolog/log"

	"github.com/filmgrid/movie-service/internal/domain"
	"github.com/filmgrid/movie-service/internal/metrics"
)

// Related serves the related-movies lookup for one movie view.
//
// The view is recorded against clientAddr before candidates are fetched, but
// a ledger failure never fails the request; the similarity and aggregation
// steps are mandatory and propagate their errors.
func (s *Service) Related(ctx context.Context, movieID int64, clientAddr string) (*domain.RelatedMovies, error) {
	src, err := s.index.Get(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if err := s.views.RecordView(ctx, clientAddr, movieID); err != nil {
		metrics.ViewRecordFailuresTotal.Inc()
		zlog.Warn().Err(err).
			Int64("movie_id", movieID).
			Str("client_addr", clientAddr).
			Msg("view record failed")
	} else {
		metrics.ViewsRecordedTotal.Inc()
	}

	candidates, err := s.index.Similar(ctx, src, s.overFetch)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(candidates))
	for i := range candidates {
		ids[i] = candidates[i].ID
	}

	counts, err := s.views.SumViewCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		candidates[i].ViewCount = counts[candidates[i].ID]
	}

	// Most-viewed first. Ties break on relevance score, then release year,
	// so the ordering is deterministic regardless of sort stability.
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.ViewCount != b.ViewCount {
			return a.ViewCount > b.ViewCount
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ReleaseDate > b.ReleaseDate
	})

	if len(candidates) > s.displayLimit {
		candidates = candidates[:s.displayLimit]
	}

	// Category union over the truncated top set only.
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, c := range candidates {
		for _, cat := range c.Categories {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}

	metrics.RelatedRequestsTotal.Inc()
	return &domain.RelatedMovies{Movies: candidates, AllCategories: categories}, nil
}
