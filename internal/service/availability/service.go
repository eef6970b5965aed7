package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/schedule"
	"github.com/kirinyoku/gigbook/internal/uow"
)

// windowStore is the slice of the availability repository this service
// uses.
type windowStore interface {
	Insert(ctx context.Context, w domain.Availability) (*domain.Availability, error)
	Get(ctx context.Context, id int64) (*domain.Availability, error)
	ListForArtist(ctx context.Context, artistID int64) ([]domain.Availability, error)
	Delete(ctx context.Context, id int64) error
}

type artistStore interface {
	Get(ctx context.Context, id int64) (*domain.Artist, error)
}

// txRunner scopes one write request to one transaction.
type txRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error) error
}

type Service struct {
	pubsub *redisrepo.BookingsPubSub
	uow    txRunner

	// Accessors bind a repo to a transaction; a nil DB means the pool.
	artists func(db postgresrepo.DB) artistStore
	windows func(db postgresrepo.DB) windowStore
}

func New(
	store *postgresrepo.Store,
	pubsub *redisrepo.BookingsPubSub,
) *Service {
	return &Service{
		pubsub:  pubsub,
		uow:     uow.NewUoW(store),
		artists: func(db postgresrepo.DB) artistStore { return store.Artists().With(db) },
		windows: func(db postgresrepo.DB) windowStore { return store.Availability().With(db) },
	}
}

// SchedulePage is an artist's weekly availability grouped into the seven
// weekday buckets.
type SchedulePage struct {
	Artist domain.NameRef     `json:"artist"`
	Days   []domain.DayBucket `json:"days"`
}

// Schedule fetches an artist's windows and groups them Monday through
// Sunday, sorted by start time within each day. Days without windows are
// present and empty.
//
// Returns:
//   - error: availability.ErrArtistNotFound if the artist does not exist.
func (s *Service) Schedule(ctx context.Context, artistID int64) (*SchedulePage, error) {
	const op = "service.availability.Schedule"

	artist, err := s.artists(nil).Get(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArtistNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	windows, err := s.windows(nil).ListForArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &SchedulePage{
		Artist: domain.NameRef{ID: artist.ID, Name: artist.Name},
		Days:   schedule.GroupByDay(windows),
	}, nil
}

// Create validates and persists a weekly availability window for an
// artist. Validation failures (*schedule.ValidationError) abort before any
// write: day out of [0,6], a time that does not parse as HH:MM, or start at
// or after end. Overlap with the artist's existing windows on the same day
// is allowed.
//
// Returns:
//   - *domain.Availability: the persisted window with its assigned ID.
//   - error: availability.ErrArtistNotFound if the artist does not exist.
func (s *Service) Create(ctx context.Context, artistID int64, dayOfWeek int, start, end string) (*domain.Availability, error) {
	const op = "service.availability.Create"

	w, err := schedule.NewWindow(artistID, dayOfWeek, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created *domain.Availability
	err = s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		created, err = s.windows(tx).Insert(ctx, w)
		if err != nil {
			if errors.Is(err, repository.ErrForeignKey) {
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishChanged(ctx, "artist", artistID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Delete removes one availability window, but only when it belongs to the
// artist named in the request.
//
// Returns:
//   - error: availability.ErrWindowNotFound if the window does not exist.
//   - error: availability.ErrNotOwned if it belongs to another artist; the
//     window is left untouched.
func (s *Service) Delete(ctx context.Context, artistID, availabilityID int64) error {
	const op = "service.availability.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		w, err := s.windows(tx).Get(ctx, availabilityID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrWindowNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if w.ArtistID != artistID {
			return fmt.Errorf("%s: %w", op, ErrNotOwned)
		}

		if err := s.windows(tx).Delete(ctx, availabilityID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.pubsub.PublishChanged(ctx, "artist", artistID)
		})

		return nil
	})
}
