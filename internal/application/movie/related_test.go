package movie

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filmgrid/movie-service/internal/domain"
)

func relatedService(idx *fakeIndex, ledger *fakeLedger, overFetch, displayLimit int) *Service {
	return New(Params{
		Index:        idx,
		Views:        ledger,
		OverFetch:    overFetch,
		DisplayLimit: displayLimit,
	})
}

func TestRelated_ReordersByViewCount(t *testing.T) {
	src := &domain.Movie{ID: 100, Title: "Heat"}
	idx := &fakeIndex{
		docs: map[int64]*domain.Movie{100: src},
		candidates: []domain.Candidate{
			{ID: 1, Title: "A", Score: 3.0},
			{ID: 2, Title: "B", Score: 2.0},
			{ID: 3, Title: "C", Score: 1.0},
		},
	}
	ledger := &fakeLedger{counts: map[int64]int64{2: 10, 3: 5}}

	svc := relatedService(idx, ledger, 20, 10)
	out, err := svc.Related(context.Background(), 100, "203.0.113.7")
	require.NoError(t, err)
	require.Len(t, out.Movies, 3)

	assert.Equal(t, int64(2), out.Movies[0].ID)
	assert.Equal(t, int64(3), out.Movies[1].ID)
	assert.Equal(t, int64(1), out.Movies[2].ID)

	assert.Equal(t, int64(10), out.Movies[0].ViewCount)
	assert.Equal(t, int64(5), out.Movies[1].ViewCount)
	assert.Equal(t, int64(0), out.Movies[2].ViewCount)
}

func TestRelated_RecordsViewForClient(t *testing.T) {
	src := &domain.Movie{ID: 7, Title: "Alien"}
	idx := &fakeIndex{docs: map[int64]*domain.Movie{7: src}}
	ledger := &fakeLedger{}

	svc := relatedService(idx, ledger, 20, 10)
	_, err := svc.Related(context.Background(), 7, "198.51.100.4")
	require.NoError(t, err)

	require.Len(t, ledger.recorded, 1)
	assert.Equal(t, recordedView{Addr: "198.51.100.4", MovieID: 7}, ledger.recorded[0])
}

func TestRelated_LedgerFailureStillServes(t *testing.T) {
	src := &domain.Movie{ID: 7, Title: "Alien"}
	idx := &fakeIndex{
		docs:       map[int64]*domain.Movie{7: src},
		candidates: []domain.Candidate{{ID: 8, Title: "Aliens"}},
	}
	ledger := &fakeLedger{recordErr: errors.New("connection refused")}

	svc := relatedService(idx, ledger, 20, 10)
	out, err := svc.Related(context.Background(), 7, "198.51.100.4")
	require.NoError(t, err)
	require.Len(t, out.Movies, 1)
	assert.Equal(t, int64(8), out.Movies[0].ID)
}

func TestRelated_UnknownMovie(t *testing.T) {
	idx := &fakeIndex{}
	ledger := &fakeLedger{}

	svc := relatedService(idx, ledger, 20, 10)
	_, err := svc.Related(context.Background(), 404, "198.51.100.4")

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)

	// No view is charged for a missing movie.
	assert.Empty(t, ledger.recorded)
}

func TestRelated_CategoriesFromTruncatedSetOnly(t *testing.T) {
	src := &domain.Movie{ID: 1, Title: "Drive"}
	idx := &fakeIndex{
		docs: map[int64]*domain.Movie{1: src},
		candidates: []domain.Candidate{
			{ID: 2, Categories: []string{"thriller"}},
			{ID: 3, Categories: []string{"noir", "thriller"}},
			{ID: 4, Categories: []string{"heist"}},
			{ID: 5, Categories: []string{"romance"}},
		},
	}
	ledger := &fakeLedger{counts: map[int64]int64{2: 9, 3: 8, 4: 7, 5: 6}}

	svc := relatedService(idx, ledger, 5, 2)
	out, err := svc.Related(context.Background(), 1, "203.0.113.7")
	require.NoError(t, err)

	require.Len(t, out.Movies, 2)
	assert.Equal(t, int64(2), out.Movies[0].ID)
	assert.Equal(t, int64(3), out.Movies[1].ID)

	// "heist" and "romance" belong to movies cut by the display limit.
	assert.ElementsMatch(t, []string{"thriller", "noir"}, out.AllCategories)
}

func TestRelated_TieBreakDeterministic(t *testing.T) {
	src := &domain.Movie{ID: 1, Title: "Solaris"}
	idx := &fakeIndex{
		docs: map[int64]*domain.Movie{1: src},
		candidates: []domain.Candidate{
			{ID: 2, Score: 1.0, ReleaseDate: 1972},
			{ID: 3, Score: 1.0, ReleaseDate: 2002},
			{ID: 4, Score: 2.5, ReleaseDate: 1968},
		},
	}
	ledger := &fakeLedger{counts: map[int64]int64{2: 3, 3: 3, 4: 3}}

	svc := relatedService(idx, ledger, 20, 10)
	out, err := svc.Related(context.Background(), 1, "203.0.113.7")
	require.NoError(t, err)
	require.Len(t, out.Movies, 3)

	// Equal view counts fall back to score, then release year.
	assert.Equal(t, int64(4), out.Movies[0].ID)
	assert.Equal(t, int64(3), out.Movies[1].ID)
	assert.Equal(t, int64(2), out.Movies[2].ID)
}

func TestRelated_AggregationFailure(t *testing.T) {
	src := &domain.Movie{ID: 1, Title: "Stalker"}
	idx := &fakeIndex{
		docs:       map[int64]*domain.Movie{1: src},
		candidates: []domain.Candidate{{ID: 2}},
	}
	ledger := &fakeLedger{sumErr: errors.New("db down")}

	svc := relatedService(idx, ledger, 20, 10)
	_, err := svc.Related(context.Background(), 1, "203.0.113.7")
	assert.Error(t, err)
}
