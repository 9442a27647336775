package movie

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
)

type movieEvent struct {
	Event      string    `json:"event"`
	MovieID    int64     `json:"movie_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// publishLifecycle emits an advisory movie.{created,updated,deleted} event.
// Failures are logged only; the write already committed.
func (s *Service) publishLifecycle(ctx context.Context, event string, movieID int64) {
	body, err := json.Marshal(movieEvent{
		Event:      event,
		MovieID:    movieID,
		OccurredAt: s.clock.Now().UTC(),
	})
	if err != nil {
		zlog.Error().Err(err).Str("event", event).Msg("event marshal failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, event, uuid.NewString(), body); err != nil {
		zlog.Warn().Err(err).Str("event", event).Int64("movie_id", movieID).Msg("event publish failed")
	}
}
