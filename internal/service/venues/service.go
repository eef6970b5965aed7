package venues

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
	BoardTTL time.Duration
	PageTTL  time.Duration
}

// venueStore is the slice of the venue repository this service uses.
type venueStore interface {
	Get(ctx context.Context, id int64) (*domain.Venue, error)
	ListWithUpcoming(ctx context.Context, now time.Time) ([]domain.SearchHit, error)
	Search(ctx context.Context, q search.Query, now time.Time) ([]domain.SearchHit, error)
	Create(ctx context.Context, v domain.Venue) (int64, error)
	Update(ctx context.Context, id int64, v domain.Venue) error
	Delete(ctx context.Context, id int64) error
}

type showStore interface {
	ForVenue(ctx context.Context, venueID int64) ([]domain.ShowDetail, error)
	CountForVenue(ctx context.Context, venueID int64) (int64, error)
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
	venues func(db postgresrepo.DB) venueStore
	shows  func(db postgresrepo.DB) showStore
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

	if cfg.PageTTL <= 0 {
		cfg.PageTTL = 15 * time.Second
	}

	return &Service{
		cache:  cache,
		pubsub: pubsub,
		uow:    uow.NewUoW(store),
		cfg:    cfg,
		venues: func(db postgresrepo.DB) venueStore { return store.Venues().With(db) },
		shows:  func(db postgresrepo.DB) showStore { return store.Shows().With(db) },
	}
}

// Board returns every venue grouped by (city, state), each entry carrying
// its upcoming-show count. Groups appear in first-seen order of the
// underlying primary-key scan, so the layout is stable between requests.
func (s *Service) Board(ctx context.Context) ([]domain.CityGroup, error) {
	const op = "service.venues.Board"

	groups, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenuesBoard(),
		s.cfg.BoardTTL,
		func(ctx context.Context) ([]domain.CityGroup, error) {
			hits, err := s.venues(nil).ListWithUpcoming(ctx, time.Now().UTC())
			if err != nil {
				return nil, err
			}

			return groupByCity(hits), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return groups, nil
}

func groupByCity(hits []domain.SearchHit) []domain.CityGroup {
	var groups []domain.CityGroup
	index := make(map[[2]string]int)

	for _, h := range hits {
		key := [2]string{h.City, h.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.CityGroup{City: h.City, State: h.State})
		}

		groups[i].Venues = append(groups[i].Venues, domain.SearchHit{
			ID:               h.ID,
			Name:             h.Name,
			NumUpcomingShows: h.NumUpcomingShows,
		})
	}

	if groups == nil {
		groups = []domain.CityGroup{}
	}

	return groups
}

// Search matches venues whose name contains the term, case-insensitively.
func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	return s.search(ctx, search.NameOnly(term))
}

// AdvancedSearch matches venues against a parsed "Name, City, State" term.
func (s *Service) AdvancedSearch(ctx context.Context, term string) (*domain.SearchResult, error) {
	return s.search(ctx, search.Parse(term))
}

func (s *Service) search(ctx context.Context, q search.Query) (*domain.SearchResult, error) {
	const op = "service.venues.search"

	hits, err := s.venues(nil).Search(ctx, q, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if hits == nil {
		hits = []domain.SearchHit{}
	}

	return &domain.SearchResult{Count: len(hits), Data: hits}, nil
}

// Get builds a venue detail page: the record plus its shows partitioned
// into past (before now) and upcoming (at or after now).
//
// Returns:
//   - error: venues.ErrVenueNotFound if the venue does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.VenuePage, error) {
	const op = "service.venues.Get"

	page, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		redisrepo.KeyVenuePage(id),
		s.cfg.PageTTL,
		func(ctx context.Context) (domain.VenuePage, error) {
			return s.loadPage(ctx, id)
		},
	)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &page, nil
}

func (s *Service) loadPage(ctx context.Context, id int64) (domain.VenuePage, error) {
	v, err := s.venues(nil).Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.VenuePage{}, ErrVenueNotFound
		}

		return domain.VenuePage{}, err
	}

	shows, err := s.shows(nil).ForVenue(ctx, id)
	if err != nil {
		return domain.VenuePage{}, err
	}

	past, upcoming := schedule.SplitShows(shows, time.Now().UTC())

	return domain.VenuePage{
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// GetRecord fetches the bare venue record, used to prefill the edit form.
func (s *Service) GetRecord(ctx context.Context, id int64) (*domain.Venue, error) {
	const op = "service.venues.GetRecord"

	v, err := s.venues(nil).Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrVenueNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return v, nil
}

// Create persists a venue inside one transaction and returns its ID.
func (s *Service) Create(ctx context.Context, v domain.Venue) (int64, error) {
	const op = "service.venues.Create"

	var id int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		id, err = s.venues(tx).Create(ctx, v)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "venue", id)
		})

		return nil
	})

	return id, err
}

// Update overwrites a venue's fields inside one transaction.
//
// Returns:
//   - error: venues.ErrVenueNotFound if the venue does not exist.
func (s *Service) Update(ctx context.Context, id int64, v domain.Venue) error {
	const op = "service.venues.Update"

	return s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		if err := s.venues(tx).Update(ctx, id, v); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "venue", id)
		})

		return nil
	})
}

// Delete removes a venue and, through the FK cascade in the same
// transaction, every show booked there. No show row can survive its venue.
//
// Returns:
//   - int64: how many shows the cascade removed.
//   - error: venues.ErrVenueNotFound if the venue does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	const op = "service.venues.Delete"

	var removedShows int64
	err := s.uow.Do(ctx, func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error {
		var err error
		removedShows, err = s.shows(tx).CountForVenue(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := s.venues(tx).Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s: %w", op, ErrVenueNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateVenue(ctx, id)
			_ = s.pubsub.PublishChanged(ctx, "venue", id)
		})

		return nil
	})
	if err != nil {
		removedShows = 0
	}

	return removedShows, err
}
