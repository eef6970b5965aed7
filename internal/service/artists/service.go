package artists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/schedule"
	"github.com/kirinyoku/gigbook/internal/search"
	"github.com/kirinyoku/gigbook/internal/uow"
)

type Config struct {
	PageTTL time.Duration
}

// artistStore is the slice of the artist repository this service uses.
type artistStore interface {
	Get(ctx context.Context, id int64) (*domain.Artist, error)
	ListNames(ctx context.Context) ([]domain.NameRef, error)
	Search(ctx context.Context, q search.Query, now time.Time) ([]domain.SearchHit, error)
	Create(ctx context.Context, a domain.Artist) (int64, error)
	Update(ctx context.Context, id int64, a domain.Artist) error
	Delete(ctx context.Context, id int64) error
}

type showStore interface {
	ForArtist(ctx context.Context, artistID int64) ([]domain.ShowDetail, error)
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

	// Accessors bind a repo to a transaction; a nil DB means the pool.
	artists func(db postgresrepo.DB) artistStore
	shows   func(db postgresrepo.DB) showStore
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.BookingsPubSub,
	cfg Config,
) *Service {
	if cfg.PageTTL <= 0 {
		cfg.PageTTL = 15 * time.Second
	}

	return &Service{
		cache:   cache,
		pubsub:  pubsub,
		uow:     uow.NewUoW(store),
		cfg:     cfg,
		artists: func(db postgresrepo.DB) artistStore { return store.Artists().With(db) },
		shows:   func(db postgresrepo.DB) showStore { return store.Shows().With(db) },
	}
}

// List returns every artist as an id/name pair, ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.NameRef, error) {
	const op = "service.artists.List"

	refs, err := s.artists(nil).ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if refs == nil {
		refs = []domain.NameRef{}
	}

	return refs, nil
}

// Search matches artists whose name contains the term, case-insensitively.
func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	return s.search(ctx, search.NameOnly(term))
}

// AdvancedSearch matches artists against a parsed "Name, City, State" term.
func (s *Service) AdvancedSearch(ctx context.Context, term string) (*domain.SearchResult, error) {
	return s.search(ctx, search.Parse(term))
}

func (s *Service) search(ctx context.Context, q search.Query) (*domain.SearchResult, error) {
	const op = "service.artists.search"

	hits, err := s.artists(nil).Search(ctx, q, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if hits == nil {
		hits = []domain.SearchHit{}
	}

	return &domain.SearchResult{Count: len(hits), Data: hits}, nil
}

// Get builds an artist detail page: the record plus its shows partitioned
// into past (before now) and upcoming (at or after now).
//
// Returns:
//   - error: artists.ErrArtistNotFound if the artist does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.ArtistPage, error) {
	const op = "service.artists.Get"

	page, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyArtistPage(id),
		s.cfg.PageTTL,
		func(ctx context.Context) (domain.ArtistPage, error) {
			return s.loadPage(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, ErrArtistNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArtistNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

func (s *Service) loadPage(ctx context.Context, id int64) (domain.ArtistPage, error) {
	a, err := s.artists(nil).Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.ArtistPage{}, ErrArtistNotFound
		}

		return domain.ArtistPage{}, err
	}

	shows, err := s.shows(nil).ForArtist(ctx, id)
	if err != nil {
		return domain.ArtistPage{}, err
	}

	past, upcoming := schedule.SplitShows(shows, time.Now().UTC())

	return domain.ArtistPage{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetRecord fetches the bare artist record, used to prefill the edit form.
func (s *Service) GetRecord(ctx context.Context, id int64) (*domain.Artist, error) {
	const op = "service.artists.GetRecord"

	a, err := s.artists(nil).Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrArtistNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return a, nil
}

// Create persists an artist inside one transaction and returns its ID.
func (s *Service) Create(ctx context.Context, a domain.Artist) (int64, error) {
	const op = "service.artists.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.artists(tx).Create(ctx, a)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "artist", id)
		})

		return nil
	})

	return id, err
}

// Update overwrites an artist's fields inside one transaction.
//
// Returns:
//   - error: artists.ErrArtistNotFound if the artist does not exist.
func (s *Service) Update(ctx context.Context, id int64, a domain.Artist) error {
	const op = "service.artists.Update"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.artists(tx).Update(ctx, id, a); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "artist", id)
		})

		return nil
	})
}

// Delete removes an artist and, through the FK cascades in the same
// transaction, every show and availability window that belongs to it.
//
// Returns:
//   - error: artists.ErrArtistNotFound if the artist does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.artists.Delete"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.artists(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrArtistNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateArtist(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "artist", id)
		})

		return nil
	})
}
