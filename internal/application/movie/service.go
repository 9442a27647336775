package movie

import (
	"time"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type Service struct {
	index    MovieIndex
	movies   MovieRepo
	views    ViewLedger
	ratings  RatingRepo
	comments CommentRepo
	genres   GenreRepo
	users    UserRepo
	pub      EventPublisher
	cache    Cache
	clock    Clock

	appURL       string
	overFetch    int
	displayLimit int
	ttlDetails   time.Duration
	ttlGenres    time.Duration
}

type Params struct {
	Index    MovieIndex
	Movies   MovieRepo
	Views    ViewLedger
	Ratings  RatingRepo
	Comments CommentRepo
	Genres   GenreRepo
	Users    UserRepo

	Publisher EventPublisher
	Cache     Cache
	Clock     Clock

	AppURL       string
	OverFetch    int
	DisplayLimit int
	TTLDetails   time.Duration
	TTLGenres    time.Duration
}

func New(p Params) *Service {
	if p.OverFetch == 0 {
		p.OverFetch = 20
	}
	if p.DisplayLimit == 0 {
		p.DisplayLimit = 10
	}
	if p.TTLDetails == 0 {
		p.TTLDetails = 5 * time.Minute
	}
	if p.TTLGenres == 0 {
		p.TTLGenres = 10 * time.Minute
	}
	if p.Publisher == nil {
		p.Publisher = NoopPublisher{}
	}
	if p.Clock == nil {
		p.Clock = systemClock{}
	}

	return &Service{
		index:        p.Index,
		movies:       p.Movies,
		views:        p.Views,
		ratings:      p.Ratings,
		comments:     p.Comments,
		genres:       p.Genres,
		users:        p.Users,
		pub:          p.Publisher,
		cache:        p.Cache,
		clock:        p.Clock,
		appURL:       p.AppURL,
		overFetch:    p.OverFetch,
		displayLimit: p.DisplayLimit,
		ttlDetails:   p.TTLDetails,
		ttlGenres:    p.TTLGenres,
	}
}
