package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	postgresrepo "github.com/kirinyoku/gigbook/internal/repository/postgres"
	"github.com/kirinyoku/gigbook/internal/schedule"
	"github.com/kirinyoku/gigbook/internal/uow"
)

type stubRunner struct {
	calls int
	hooks []uow.AfterCommit
}

func (r *stubRunner) Do(ctx context.Context, fn func(ctx context.Context, tx postgresrepo.DB, after func(uow.AfterCommit)) error) error {
	r.calls++
	return fn(ctx, nil, func(h uow.AfterCommit) { r.hooks = append(r.hooks, h) })
}

type stubWindows struct {
	byID    map[int64]domain.Availability
	nextID  int64
	deleted []int64
}

func newStubWindows(windows ...domain.Availability) *stubWindows {
	f := &stubWindows{byID: map[int64]domain.Availability{}}
	for _, w := range windows {
		f.byID[w.ID] = w
		if w.ID > f.nextID {
			f.nextID = w.ID
		}
	}
	return f
}

func (f *stubWindows) Insert(_ context.Context, w domain.Availability) (*domain.Availability, error) {
	f.nextID++
	w.ID = f.nextID
	f.byID[w.ID] = w
	return &w, nil
}

func (f *stubWindows) Get(_ context.Context, id int64) (*domain.Availability, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (f *stubWindows) ListForArtist(_ context.Context, artistID int64) ([]domain.Availability, error) {
	var out []domain.Availability
	for _, w := range f.byID {
		if w.ArtistID == artistID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *stubWindows) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type stubArtists struct {
	byID map[int64]domain.Artist
}

func (f *stubArtists) Get(_ context.Context, id int64) (*domain.Artist, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func newTestService(fw *stubWindows, fa *stubArtists, runner *stubRunner) *Service {
	return &Service{
		uow:     runner,
		artists: func(postgresrepo.DB) artistStore { return fa },
		windows: func(postgresrepo.DB) windowStore { return fw },
	}
}

func TestDeleteRejectsForeignWindow(t *testing.T) {
	fw := newStubWindows(domain.Availability{
		ID: 7, ArtistID: 1, DayOfWeek: 2, StartMin: 10 * 60, EndMin: 12 * 60,
	})
	runner := &stubRunner{}
	svc := newTestService(fw, nil, runner)

	err := svc.Delete(context.Background(), 2, 7)
	if !errors.Is(err, ErrNotOwned) {
		t.Fatalf("Delete with mismatched artist = %v, want ErrNotOwned", err)
	}

	if len(fw.deleted) != 0 {
		t.Errorf("store Delete was reached for ids %v, want none", fw.deleted)
	}
	if _, ok := fw.byID[7]; !ok {
		t.Error("window 7 was removed despite the ownership mismatch")
	}
	if len(runner.hooks) != 0 {
		t.Errorf("%d after-commit hooks queued, want 0", len(runner.hooks))
	}
}

func TestDeleteOwnedWindow(t *testing.T) {
	fw := newStubWindows(domain.Availability{
		ID: 7, ArtistID: 1, DayOfWeek: 2, StartMin: 10 * 60, EndMin: 12 * 60,
	})
	runner := &stubRunner{}
	svc := newTestService(fw, nil, runner)

	if err := svc.Delete(context.Background(), 1, 7); err != nil {
		t.Fatalf("Delete = %v, want nil", err)
	}

	if len(fw.deleted) != 1 || fw.deleted[0] != 7 {
		t.Errorf("deleted ids = %v, want [7]", fw.deleted)
	}
	if len(runner.hooks) != 1 {
		t.Errorf("%d after-commit hooks queued, want 1", len(runner.hooks))
	}
}

func TestDeleteMissingWindow(t *testing.T) {
	svc := newTestService(newStubWindows(), nil, &stubRunner{})

	err := svc.Delete(context.Background(), 1, 99)
	if !errors.Is(err, ErrWindowNotFound) {
		t.Fatalf("Delete of missing window = %v, want ErrWindowNotFound", err)
	}
}

func TestCreateValidationStopsBeforeStore(t *testing.T) {
	fw := newStubWindows()
	runner := &stubRunner{}
	svc := newTestService(fw, nil, runner)

	tests := []struct {
		name  string
		day   int
		start string
		end   string
	}{
		{"day out of range", 7, "10:00", "12:00"},
		{"bad start time", 3, "25:00", "12:00"},
		{"start at end", 3, "12:00", "12:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tt.day, tt.start, tt.end)

			var verr *schedule.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create = %v, want *schedule.ValidationError", err)
			}
		})
	}

	if runner.calls != 0 {
		t.Errorf("transaction started %d times for rejected input, want 0", runner.calls)
	}
	if len(fw.byID) != 0 {
		t.Errorf("%d windows persisted for rejected input, want 0", len(fw.byID))
	}
}

func TestCreatePersistsValidWindow(t *testing.T) {
	fw := newStubWindows()
	runner := &stubRunner{}
	svc := newTestService(fw, nil, runner)

	w, err := svc.Create(context.Background(), 1, 0, "09:30", "11:00")
	if err != nil {
		t.Fatalf("Create = %v, want nil", err)
	}

	if w.ID == 0 {
		t.Error("created window has no assigned ID")
	}
	if w.ArtistID != 1 || w.DayOfWeek != 0 || w.StartMin.String() != "09:30" || w.EndMin.String() != "11:00" {
		t.Errorf("created window = %+v", w)
	}
}

func TestScheduleUnknownArtist(t *testing.T) {
	fa := &stubArtists{byID: map[int64]domain.Artist{}}
	svc := newTestService(newStubWindows(), fa, &stubRunner{})

	_, err := svc.Schedule(context.Background(), 42)
	if !errors.Is(err, ErrArtistNotFound) {
		t.Fatalf("Schedule for unknown artist = %v, want ErrArtistNotFound", err)
	}
}
