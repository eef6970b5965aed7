package postgres

import (
	"context"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS venues (
	id                  bigserial PRIMARY KEY,
	name                text NOT NULL,
	city                varchar(120) NOT NULL,
	state               varchar(120) NOT NULL,
	address             varchar(120) NOT NULL,
	phone               varchar(120) NOT NULL DEFAULT '',
	genres              text[] NOT NULL DEFAULT '{}',
	image_link          varchar(500) NOT NULL DEFAULT '',
	facebook_link       varchar(120) NOT NULL DEFAULT '',
	website_link        varchar(120) NOT NULL DEFAULT '',
	seeking_talent      boolean NOT NULL DEFAULT false,
	seeking_description varchar(500) NOT NULL DEFAULT '',
	created_at          timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS artists (
	id                  bigserial PRIMARY KEY,
	name                text NOT NULL,
	city                varchar(120) NOT NULL,
	state               varchar(120) NOT NULL,
	phone               varchar(120) NOT NULL DEFAULT '',
	genres              text[] NOT NULL DEFAULT '{}',
	image_link          varchar(500) NOT NULL DEFAULT '',
	facebook_link       varchar(120) NOT NULL DEFAULT '',
	website_link        varchar(120) NOT NULL DEFAULT '',
	seeking_venue       boolean NOT NULL DEFAULT false,
	seeking_description varchar(500) NOT NULL DEFAULT '',
	created_at          timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shows (
	id         bigserial PRIMARY KEY,
	artist_id  bigint NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
	venue_id   bigint NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
	start_time timestamptz NOT NULL
);

CREATE INDEX IF NOT EXISTS shows_venue_start_idx ON shows (venue_id, start_time);
CREATE INDEX IF NOT EXISTS shows_artist_start_idx ON shows (artist_id, start_time);

CREATE TABLE IF NOT EXISTS availability (
	id          bigserial PRIMARY KEY,
	artist_id   bigint NOT NULL REFERENCES artists(id) ON DELETE CASCADE,
	day_of_week smallint NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
	start_min   smallint NOT NULL,
	end_min     smallint NOT NULL,
	CHECK (start_min < end_min)
);

CREATE INDEX IF NOT EXISTS availability_artist_idx ON availability (artist_id, day_of_week, start_min);
`

// CreateSchema bootstraps the four booking tables if they do not exist.
func (s *Store) CreateSchema(ctx context.Context) error {
	const op = "postgres.Store.CreateSchema"

	if _, err := s.pool.Exec(ctx, schemaDDL); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
