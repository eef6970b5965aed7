package domain

import (
	"time"
)

type Venue struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

type Artist struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	WebsiteLink        string    `json:"website_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

type Show struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueID   int64     `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// Availability is a recurring weekly window during which an artist is open
// to booking. Times of day are minutes since midnight (no date component).
type Availability struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	DayOfWeek int       `json:"day_of_week"` // 0=Monday .. 6=Sunday
	StartMin  ClockTime `json:"start_time"`
	EndMin    ClockTime `json:"end_time"`
}

// SearchHit is one row of a venue/artist search result, augmented with the
// count of that entity's upcoming shows.
type SearchHit struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

// NameRef is a bare id/name pair, used by the artists list page.
type NameRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SearchResult struct {
	Count int         `json:"count"`
	Data  []SearchHit `json:"data"`
}

// CityGroup groups venues sharing a (city, state) pair for the venues list.
type CityGroup struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []SearchHit `json:"venues"`
}

// ShowDetail is a show joined with the display fields of both sides.
type ShowDetail struct {
	ID              int64     `json:"id"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link,omitempty"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
	StartTime       time.Time `json:"-"`
	StartTimeISO    string    `json:"start_time"`
}

// VenuePage is a venue detail page: the record plus its show partitions.
type VenuePage struct {
	Venue
	PastShows          []ShowDetail `json:"past_shows"`
	UpcomingShows      []ShowDetail `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// ArtistPage is an artist detail page: the record plus its show partitions.
type ArtistPage struct {
	Artist
	PastShows          []ShowDetail `json:"past_shows"`
	UpcomingShows      []ShowDetail `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// DayBucket is one weekday's availability windows, sorted by start time.
type DayBucket struct {
	Day     string         `json:"day"`
	Windows []Availability `json:"windows"`
}

// ISO8601UTC renders t the way booking pages display show times.
func ISO8601UTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
