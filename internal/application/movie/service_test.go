package movie

import (
	"context"
	"time"

	"github.com/filmgrid/movie-service/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeIndex struct {
	docs       map[int64]*domain.Movie
	candidates []domain.Candidate
	similarErr error

	indexed []int64
	deleted []int64
}

func (f *fakeIndex) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	if m, ok := f.docs[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound("Movie not found")
}

func (f *fakeIndex) Similar(ctx context.Context, src *domain.Movie, limit int) ([]domain.Candidate, error) {
	if f.similarErr != nil {
		return nil, f.similarErr
	}
	if len(f.candidates) > limit {
		return f.candidates[:limit], nil
	}
	return f.candidates, nil
}

func (f *fakeIndex) List(ctx context.Context, fl ListFilter) ([]domain.Movie, int, error) {
	return nil, 0, nil
}

func (f *fakeIndex) IndexMovie(ctx context.Context, m *domain.Movie) error {
	f.indexed = append(f.indexed, m.ID)
	if f.docs == nil {
		f.docs = map[int64]*domain.Movie{}
	}
	f.docs[m.ID] = m
	return nil
}

func (f *fakeIndex) DeleteMovie(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.docs, id)
	return nil
}

type recordedView struct {
	Addr    string
	MovieID int64
}

type fakeLedger struct {
	recorded  []recordedView
	recordErr error

	counts map[int64]int64
	sumErr error
}

func (f *fakeLedger) RecordView(ctx context.Context, ipAddress string, movieID int64) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, recordedView{Addr: ipAddress, MovieID: movieID})
	return nil
}

func (f *fakeLedger) SumViewCounts(ctx context.Context, movieIDs []int64) (map[int64]int64, error) {
	if f.sumErr != nil {
		return nil, f.sumErr
	}
	out := make(map[int64]int64)
	for _, id := range movieIDs {
		if n, ok := f.counts[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

type fakeGenres struct {
	genres []domain.Genre
}

func (f *fakeGenres) List(ctx context.Context) ([]domain.Genre, error) { return f.genres, nil }

func (f *fakeGenres) ByIDs(ctx context.Context, ids []int64) ([]domain.Genre, error) {
	var out []domain.Genre
	for _, id := range ids {
		for _, g := range f.genres {
			if g.ID == id {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func (f *fakeGenres) IDsByNames(ctx context.Context, names []string) ([]int64, error) {
	var out []int64
	for _, n := range names {
		for _, g := range f.genres {
			if g.Name == n {
				out = append(out, g.ID)
			}
		}
	}
	return out, nil
}

type fakeMovies struct {
	nextID  int64
	created []int64
	deleted []int64
}

func (f *fakeMovies) Create(ctx context.Context, m *domain.Movie, genreIDs []int64) (int64, error) {
	f.nextID++
	f.created = append(f.created, f.nextID)
	return f.nextID, nil
}

func (f *fakeMovies) Update(ctx context.Context, m *domain.Movie, genreIDs []int64) error {
	return nil
}

func (f *fakeMovies) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRatings struct {
	addErr error
	added  []int64
	avg    map[int64]float64
	user   map[int64]float64
}

func (f *fakeRatings) Add(ctx context.Context, userID, movieID int64, score float64) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, movieID)
	return nil
}

func (f *fakeRatings) Average(ctx context.Context, movieID int64) (*float64, error) {
	if v, ok := f.avg[movieID]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeRatings) AverageFor(ctx context.Context, movieIDs []int64) (map[int64]float64, error) {
	out := make(map[int64]float64)
	for _, id := range movieIDs {
		if v, ok := f.avg[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (f *fakeRatings) UserScore(ctx context.Context, userID, movieID int64) (float64, error) {
	return f.user[movieID], nil
}

type fakeUsers struct {
	users map[int64]*domain.User
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound("User not found")
}
