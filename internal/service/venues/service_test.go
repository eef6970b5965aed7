package venues

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	"github.com/kirinyoku/gigbook/internal/search"
	"github.com/kirinyoku/gigbook/internal/uow"
)

func TestGroupByCity(t *testing.T) {
	hits := []domain.SearchHit{
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", NumUpcomingShows: 1},
	}

	groups := groupByCity(hits)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// Groups keep first-seen order of the scan.
	if groups[0].City != "San Francisco" || groups[0].State != "CA" {
		t.Errorf("groups[0] = %s, %s; want San Francisco, CA", groups[0].City, groups[0].State)
	}
	if groups[1].City != "New York" || groups[1].State != "NY" {
		t.Errorf("groups[1] = %s, %s; want New York, NY", groups[1].City, groups[1].State)
	}

	wantSF := []domain.SearchHit{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
	}
	if !reflect.DeepEqual(groups[0].Venues, wantSF) {
		t.Errorf("San Francisco venues = %+v, want %+v", groups[0].Venues, wantSF)
	}

	if len(groups[1].Venues) != 1 || groups[1].Venues[0].ID != 2 {
		t.Errorf("New York venues = %+v, want one entry with ID 2", groups[1].Venues)
	}
}

type stubRunner struct {
	calls int
	hooks []uow.AfterCommit
}

func (r *stubRunner) Do(ctx context.Context, fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error) error {
	r.calls++
	return fn(ctx, nil, func(h uow.AfterCommit) { r.hooks = append(r.hooks, h) })
}

type stubVenues struct {
	existing map[int64]bool
	deleted  []int64
}

func (f *stubVenues) Get(_ context.Context, id int64) (*domain.Venue, error) {
	if !f.existing[id] {
		return nil, repository.ErrNotFound
	}
	return &domain.Venue{ID: id}, nil
}

func (f *stubVenues) ListWithUpcoming(context.Context, time.Time) ([]domain.SearchHit, error) {
	return nil, nil
}

func (f *stubVenues) Search(context.Context, search.Query, time.Time) ([]domain.SearchHit, error) {
	return nil, nil
}

func (f *stubVenues) Create(context.Context, domain.Venue) (int64, error) {
	return 0, errors.New("unexpected Create")
}

func (f *stubVenues) Update(context.Context, int64, domain.Venue) error {
	return errors.New("unexpected Update")
}

func (f *stubVenues) Delete(_ context.Context, id int64) error {
	if !f.existing[id] {
		return repository.ErrNotFound
	}
	delete(f.existing, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type stubShows struct {
	counts map[int64]int64
}

func (f *stubShows) ForVenue(context.Context, int64) ([]domain.ShowDetail, error) {
	return nil, nil
}

func (f *stubShows) CountForVenue(_ context.Context, venueID int64) (int64, error) {
	return f.counts[venueID], nil
}

func newDeleteTestService(fv *stubVenues, fs *stubShows, runner *stubRunner) *Service {
	return &Service{
		uow:    runner,
		venues: func(postgresrepo.DB) venueStore { return fv },
		shows:  func(postgresrepo.DB) showStore { return fs },
	}
}

func TestDeleteReportsCascadedShows(t *testing.T) {
	fv := &stubVenues{existing: map[int64]bool{5: true}}
	fs := &stubShows{counts: map[int64]int64{5: 2}}
	runner := &stubRunner{}
	svc := newDeleteTestService(fv, fs, runner)

	removed, err := svc.Delete(context.Background(), 5)
	if err != nil {
		t.Fatalf("Delete = %v, want nil", err)
	}

	if removed != 2 {
		t.Errorf("removed shows = %d, want 2", removed)
	}
	if len(fv.deleted) != 1 || fv.deleted[0] != 5 {
		t.Errorf("deleted venues = %v, want [5]", fv.deleted)
	}
	if runner.calls != 1 {
		t.Errorf("count and delete ran across %d transactions, want 1", runner.calls)
	}
	if len(runner.hooks) != 1 {
		t.Errorf("%d after-commit hooks queued, want 1", len(runner.hooks))
	}
}

func TestDeleteMissingVenueRemovesNothing(t *testing.T) {
	fv := &stubVenues{existing: map[int64]bool{}}
	fs := &stubShows{counts: map[int64]int64{}}
	runner := &stubRunner{}
	svc := newDeleteTestService(fv, fs, runner)

	removed, err := svc.Delete(context.Background(), 5)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("Delete of missing venue = %v, want ErrVenueNotFound", err)
	}

	if removed != 0 {
		t.Errorf("removed shows = %d, want 0", removed)
	}
	if len(fv.deleted) != 0 {
		t.Errorf("deleted venues = %v, want none", fv.deleted)
	}
	if len(runner.hooks) != 0 {
		t.Errorf("%d after-commit hooks queued, want 0", len(runner.hooks))
	}
}

func TestGroupByCityEmpty(t *testing.T) {
	groups := groupByCity(nil)
	if groups == nil {
		t.Fatal("got nil, want empty non-nil slice")
	}
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}
