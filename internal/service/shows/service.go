package shows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/uow"
)

type Config struct {
	BoardTTL time.Duration
}

// showStore is the slice of the show repository this service uses.
type showStore interface {
	ListAll(ctx context.Context) ([]domain.ShowDetail, error)
	Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (int64, error)
}

// txRunner scopes one write request to one transaction.
type txRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error) error
}

type Service struct {
	cache  *redisrepo.Cache
	pubsub *redisrepo.BookingsPubSub
	uow    txRunner
	cfg    Config

	// Accessor binds the repo to a transaction; a nil DB means the pool.
	shows func(db postgresrepo.DB) showStore
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.BookingsPubSub,
	cfg Config,
) *Service {
	if cfg.BoardTTL <= 0 {
		cfg.BoardTTL = 15 * time.Second
	}

	return &Service{
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
		shows:  func(db postgresrepo.DB) showStore { return store.Shows().With(db) },
	}
}

// Board lists every show joined with venue and artist display fields.
func (s *Service) Board(ctx context.Context) ([]domain.ShowDetail, error) {
	const op = "service.shows.Board"

	board, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyShowsBoard(),
		s.cfg.BoardTTL,
		func(ctx context.Context) ([]domain.ShowDetail, error) {
			details, err := s.shows(nil).ListAll(ctx)
			if err != nil {
				return nil, err
			}

			if details == nil {
				details = []domain.ShowDetail{}
			}

			return details, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return board, nil
}

// Create books a show linking one artist to one venue at a timestamp,
// inside one transaction.
//
// Returns:
//   - error: shows.ErrUnknownReference if artist or venue does not exist.
func (s *Service) Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (int64, error) {
	const op = "service.shows.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.shows(tx).Create(ctx, artistID, venueID, startTime)
		if err != nil {
			if errors.Is(err, repository.ErrForeignKey) {
				return fmt.Errorf("%s: %w", op, ErrUnknownReference)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, venueID)
			_ = s.cache.InvalidateArtist(ctx, artistID)
			_ = s.pubsub.PublishChanged(ctx, "show", id)
		})

		return nil
	})

	return id, err
}
