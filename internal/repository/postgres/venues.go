package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/gigbook/internal/domain"
	"github.com/kirinyoku/gigbook/internal/repository"
	"github.com/kirinyoku/gigbook/internal/search"
)

type VenueRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *VenueRepo) With(db DB) *VenueRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *VenueRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const venueColumns = `id, name, city, state, address, phone, genres,
	image_link, facebook_link, website_link, seeking_talent,
	seeking_description, created_at`

func scanVenue(row interface{ Scan(dest ...any) error }) (*domain.Venue, error) {
	var v domain.Venue
	err := row.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.Genres,
		&v.ImageLink, &v.FacebookLink, &v.WebsiteLink, &v.SeekingTalent,
		&v.SeekingDescription, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Get retrieves a venue by its ID.
//
// Returns:
//   - *domain.Venue: the venue when found.
//   - error: repository.ErrNotFound if the venue is not found.
func (r *VenueRepo) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	const op = "postgres.VenueRepo.Get"

	db := r.handle()

	v, err := scanVenue(db.QueryRow(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return v, nil
}

// ListWithUpcoming lists every venue in primary-key order together with the
// count of its shows strictly after now. List pages use the strict
// comparison; detail pages do not.
func (r *VenueRepo) ListWithUpcoming(ctx context.Context, now time.Time) ([]domain.SearchHit, error) {
	const op = "postgres.VenueRepo.ListWithUpcoming"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT v.id, v.name, v.city, v.state,
		        (SELECT COUNT(*) FROM shows s
		          WHERE s.venue_id = v.id AND s.start_time > $1)
		 FROM venues v
		 ORDER BY v.id`,
		now,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.SearchHit
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.State, &h.NumUpcomingShows); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Search runs a parsed query against venue name/city/state and augments
// each hit with its upcoming-show count (strictly after now).
func (r *VenueRepo) Search(ctx context.Context, q search.Query, now time.Time) ([]domain.SearchHit, error) {
	const op = "postgres.VenueRepo.Search"

	db := r.handle()

	clause, args := q.Where("v.name", "v.city", "v.state")
	nowArg := len(args) + 1
	args = append(args, now)

	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT v.id, v.name, v.city, v.state,
		        (SELECT COUNT(*) FROM shows s
		          WHERE s.venue_id = v.id AND s.start_time > $%d)
		 FROM venues v
		 WHERE %s
		 ORDER BY v.id`,
		nowArg, clause,
	), args...)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.SearchHit
	for rows.Next() {
		var h domain.SearchHit
		if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.State, &h.NumUpcomingShows); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Create inserts a venue and returns its assigned ID.
func (r *VenueRepo) Create(ctx context.Context, v domain.Venue) (int64, error) {
	const op = "postgres.VenueRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO venues (name, city, state, address, phone, genres,
		                     image_link, facebook_link, website_link,
		                     seeking_talent, seeking_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Update overwrites every mutable field of a venue.
//
// Returns:
//   - error: repository.ErrNotFound if the venue does not exist.
func (r *VenueRepo) Update(ctx context.Context, id int64, v domain.Venue) error {
	const op = "postgres.VenueRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE venues
		 SET name = $2, city = $3, state = $4, address = $5, phone = $6,
		     genres = $7, image_link = $8, facebook_link = $9,
		     website_link = $10, seeking_talent = $11, seeking_description = $12
		 WHERE id = $1`,
		id, v.Name, v.City, v.State, v.Address, v.Phone, v.Genres,
		v.ImageLink, v.FacebookLink, v.WebsiteLink,
		v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes a venue. Its shows go with it through the FK cascade, so
// run this inside a transaction.
//
// Returns:
//   - error: repository.ErrNotFound if the venue does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.VenueRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
