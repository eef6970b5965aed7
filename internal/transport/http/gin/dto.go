package httpgin

import (
	"time"

	"github.com/kirinyoku/gigbook/internal/domain"
)

// Forms are posted urlencoded, field names matching the entity attributes.

type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f VenueForm) toDomain() domain.Venue {
	genres := f.Genres
	if genres == nil {
		genres = []string{}
	}

	return domain.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f ArtistForm) toDomain() domain.Artist {
	genres := f.Genres
	if genres == nil {
		genres = []string{}
	}

	return domain.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

type ShowForm struct {
	ArtistID  int64  `form:"artist_id" binding:"required"`
	VenueID   int64  `form:"venue_id" binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
}

// AvailabilityForm carries a weekly window submission. day_of_week may
// legitimately be zero (Monday), so range checking happens in the service,
// not through a binding tag.
type AvailabilityForm struct {
	DayOfWeek int    `form:"day_of_week"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}

type SearchForm struct {
	SearchTerm string `form:"search_term"`
}

// StatusResponse is the write-outcome payload: an explicit result carrying
// status and message, rendered by the caller instead of a flash queue.
type StatusResponse struct {
	Status  string `json:"status"` // "success" | "error"
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
