package redis

import "fmt"

const ns = "gigbook:v1"

func KeyVenuesBoard() string {
	return ns + ":venues:board"
}

func KeyShowsBoard() string {
	return ns + ":shows:board"
}

func KeyVenuePage(venueID int64) string {
	return fmt.Sprintf("%s:venue:%d:page", ns, venueID)
}

func KeyArtistPage(artistID int64) string {
	return fmt.Sprintf("%s:artist:%d:page", ns, artistID)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelBookingsChanged() string {
	return ns + ":bookings:changed"
}
