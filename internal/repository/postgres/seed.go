package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
)

// SeedDemoData loads a small set of sample venues, artists and shows for
// local development. It is a no-op when any venue already exists.
func (s *Store) SeedDemoData(ctx context.Context) error {
	const op = "postgres.Store.SeedDemoData"

	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM venues`).Scan(&count); err != nil {
		return wrapDBErr(op, err)
	}
	if count > 0 {
		return nil
	}

	venues := []domain.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			WebsiteLink:        "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			WebsiteLink:  "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			WebsiteLink:  "https://www.parksquarelivemusicandcoffee.com",
		},
	}

	artists := []domain.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             []string{"Rock n Roll"},
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			WebsiteLink:        "https://www.gunsnpetalsband.com",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			Genres:    []string{"Jazz"},
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5",
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    []string{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61",
		},
	}

	err := s.RunTx(ctx, nil, func(ctx context.Context, tx DB) error {
		venueIDs := make([]int64, len(venues))
		for i, v := range venues {
			id, err := s.Venues().With(tx).Create(ctx, v)
			if err != nil {
				return err
			}
			venueIDs[i] = id
		}

		artistIDs := make([]int64, len(artists))
		for i, a := range artists {
			id, err := s.Artists().With(tx).Create(ctx, a)
			if err != nil {
				return err
			}
			artistIDs[i] = id
		}

		now := time.Now().UTC()
		shows := []struct {
			artist int
			venue  int
			start  time.Time
		}{
			{0, 0, now.AddDate(0, -2, 0)},
			{1, 2, now.AddDate(0, -1, -3)},
			{2, 2, now.AddDate(0, 0, 14)},
			{2, 0, now.AddDate(0, 1, 0)},
			{1, 1, now.AddDate(0, 1, 7)},
		}

		for _, sh := range shows {
			if _, err := s.Shows().With(tx).Create(
				ctx, artistIDs[sh.artist], venueIDs[sh.venue], sh.start,
			); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}
