package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
)

type AvailabilityRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AvailabilityRepo) With(db DB) *AvailabilityRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AvailabilityRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Insert persists a validated availability window and returns it with its
// assigned ID.
//
// Returns:
//   - error: repository.ErrForeignKey if the artist does not exist.
func (r *AvailabilityRepo) Insert(ctx context.Context, w domain.Availability) (*domain.Availability, error) {
	const op = "postgres.AvailabilityRepo.Insert"

	db := r.handle()

	err := db.QueryRow(ctx,
		`INSERT INTO availability (artist_id, day_of_week, start_min, end_min)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		w.ArtistID, w.DayOfWeek, int(w.StartMin), int(w.EndMin),
	).Scan(&w.ID)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &w, nil
}

// Get retrieves an availability window by its ID.
//
// Returns:
//   - error: repository.ErrNotFound if the window is not found.
func (r *AvailabilityRepo) Get(ctx context.Context, id int64) (*domain.Availability, error) {
	const op = "postgres.AvailabilityRepo.Get"

	db := r.handle()

	var w domain.Availability
	var startMin, endMin int
	err := db.QueryRow(ctx,
		`SELECT id, artist_id, day_of_week, start_min, end_min
		 FROM availability WHERE id = $1`,
		id,
	).Scan(&w.ID, &w.ArtistID, &w.DayOfWeek, &startMin, &endMin)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	w.StartMin = domain.ClockTime(startMin)
	w.EndMin = domain.ClockTime(endMin)

	return &w, nil
}

// ListForArtist lists an artist's windows ordered by day of week, then
// start time. An artist with no windows yields an empty list, not an error.
func (r *AvailabilityRepo) ListForArtist(ctx context.Context, artistID int64) ([]domain.Availability, error) {
	const op = "postgres.AvailabilityRepo.ListForArtist"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, artist_id, day_of_week, start_min, end_min
		 FROM availability
		 WHERE artist_id = $1
		 ORDER BY day_of_week, start_min`,
		artistID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.Availability
	for rows.Next() {
		var w domain.Availability
		var startMin, endMin int
		if err := rows.Scan(&w.ID, &w.ArtistID, &w.DayOfWeek, &startMin, &endMin); err != nil {
			return nil, wrapDBErr(op, err)
		}
		w.StartMin = domain.ClockTime(startMin)
		w.EndMin = domain.ClockTime(endMin)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Delete removes an availability window.
//
// Returns:
//   - error: repository.ErrNotFound if the window does not exist.
func (r *AvailabilityRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.AvailabilityRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM availability WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
