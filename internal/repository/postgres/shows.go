package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/gigbook/internal/domain"
)

type ShowRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShowRepo) With(db DB) *ShowRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShowRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func collectShowDetails(rows pgx.Rows, op string) ([]domain.ShowDetail, error) {
	defer rows.Close()

	var out []domain.ShowDetail
	for rows.Next() {
		var d domain.ShowDetail
		if err := rows.Scan(
			&d.ID, &d.VenueID, &d.VenueName, &d.VenueImageLink,
			&d.ArtistID, &d.ArtistName, &d.ArtistImageLink, &d.StartTime,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		d.StartTimeISO = domain.ISO8601UTC(d.StartTime)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

const showDetailQuery = `
	SELECT sh.id, sh.venue_id, v.name, v.image_link,
	       sh.artist_id, a.name, a.image_link, sh.start_time
	FROM shows sh
	JOIN venues v ON v.id = sh.venue_id
	JOIN artists a ON a.id = sh.artist_id`

// ListAll lists every show joined with both display sides, in primary-key
// order.
func (r *ShowRepo) ListAll(ctx context.Context) ([]domain.ShowDetail, error) {
	const op = "postgres.ShowRepo.ListAll"

	db := r.handle()

	rows, err := db.Query(ctx, showDetailQuery+` ORDER BY sh.id`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return collectShowDetails(rows, op)
}

// ForVenue lists a venue's shows with artist display fields, ordered by
// start time. Past/upcoming partitioning happens in the schedule package.
func (r *ShowRepo) ForVenue(ctx context.Context, venueID int64) ([]domain.ShowDetail, error) {
	const op = "postgres.ShowRepo.ForVenue"

	db := r.handle()

	rows, err := db.Query(ctx,
		showDetailQuery+` WHERE sh.venue_id = $1 ORDER BY sh.start_time`,
		venueID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return collectShowDetails(rows, op)
}

// ForArtist lists an artist's shows with venue display fields, ordered by
// start time.
func (r *ShowRepo) ForArtist(ctx context.Context, artistID int64) ([]domain.ShowDetail, error) {
	const op = "postgres.ShowRepo.ForArtist"

	db := r.handle()

	rows, err := db.Query(ctx,
		showDetailQuery+` WHERE sh.artist_id = $1 ORDER BY sh.start_time`,
		artistID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return collectShowDetails(rows, op)
}

// Create inserts a show and returns its assigned ID.
//
// Returns:
//   - error: repository.ErrForeignKey if artist or venue does not exist.
func (r *ShowRepo) Create(ctx context.Context, artistID, venueID int64, startTime time.Time) (int64, error) {
	const op = "postgres.ShowRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO shows (artist_id, venue_id, start_time)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		artistID, venueID, startTime,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// CountForVenue counts a venue's shows. Used to report how many rows a
// cascade delete will take along.
func (r *ShowRepo) CountForVenue(ctx context.Context, venueID int64) (int64, error) {
	const op = "postgres.ShowRepo.CountForVenue"

	db := r.handle()

	var n int64
	err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM shows WHERE venue_id = $1`, venueID,
	).Scan(&n)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return n, nil
}
