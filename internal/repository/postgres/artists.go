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

type ArtistRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ArtistRepo) With(db DB) *ArtistRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ArtistRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

const artistColumns = `id, name, city, state, phone, genres,
	image_link, facebook_link, website_link, seeking_venue,
	seeking_description, created_at`

func scanArtist(row interface{ Scan(dest ...any) error }) (*domain.Artist, error) {
	var a domain.Artist
	err := row.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres,
		&a.ImageLink, &a.FacebookLink, &a.WebsiteLink, &a.SeekingVenue,
		&a.SeekingDescription, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves an artist by its ID.
//
// Returns:
//   - *domain.Artist: the artist when found.
//   - error: repository.ErrNotFound if the artist is not found.
func (r *ArtistRepo) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	const op = "postgres.ArtistRepo.Get"

	db := r.handle()

	a, err := scanArtist(db.QueryRow(ctx,
		`SELECT `+artistColumns+` FROM artists WHERE id = $1`,
		id,
	))
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return a, nil
}

// ListNames lists every artist as an id/name pair, ordered by name.
func (r *ArtistRepo) ListNames(ctx context.Context) ([]domain.NameRef, error) {
	const op = "postgres.ArtistRepo.ListNames"

	db := r.handle()

	rows, err := db.Query(ctx, `SELECT id, name FROM artists ORDER BY name`)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var out []domain.NameRef
	for rows.Next() {
		var ref domain.NameRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, wrapDBErr(op, err)
		}
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return out, nil
}

// Search runs a parsed query against artist name/city/state and augments
// each hit with its upcoming-show count (strictly after now).
func (r *ArtistRepo) Search(ctx context.Context, q search.Query, now time.Time) ([]domain.SearchHit, error) {
	const op = "postgres.ArtistRepo.Search"

	db := r.handle()

	clause, args := q.Where("a.name", "a.city", "a.state")
	nowArg := len(args) + 1
	args = append(args, now)

	rows, err := db.Query(ctx, fmt.Sprintf(
		`SELECT a.id, a.name, a.city, a.state,
		        (SELECT COUNT(*) FROM shows s
		          WHERE s.artist_id = a.id AND s.start_time > $%d)
		 FROM artists a
		 WHERE %s
		 ORDER BY a.id`,
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

// Create inserts an artist and returns its assigned ID.
func (r *ArtistRepo) Create(ctx context.Context, a domain.Artist) (int64, error) {
	const op = "postgres.ArtistRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO artists (name, city, state, phone, genres,
		                      image_link, facebook_link, website_link,
		                      seeking_venue, seeking_description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Update overwrites every mutable field of an artist.
//
// Returns:
//   - error: repository.ErrNotFound if the artist does not exist.
func (r *ArtistRepo) Update(ctx context.Context, id int64, a domain.Artist) error {
	const op = "postgres.ArtistRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE artists
		 SET name = $2, city = $3, state = $4, phone = $5, genres = $6,
		     image_link = $7, facebook_link = $8, website_link = $9,
		     seeking_venue = $10, seeking_description = $11
		 WHERE id = $1`,
		id, a.Name, a.City, a.State, a.Phone, a.Genres,
		a.ImageLink, a.FacebookLink, a.WebsiteLink,
		a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

// Delete removes an artist. Its shows and availability windows go with it
// through the FK cascades, so run this inside a transaction.
//
// Returns:
//   - error: repository.ErrNotFound if the artist does not exist.
func (r *ArtistRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.ArtistRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
