package service

import (
	postgres "github.com/kirinyoku/gigbook/internal/repository/postgres"
	redis "github.com/kirinyoku/gigbook/internal/repository/redis"
	"github.com/kirinyoku/gigbook/internal/service/artists"
	"github.com/kirinyoku/gigbook/internal/service/availability"
	"github.com/kirinyoku/gigbook/internal/service/shows"
	"github.com/kirinyoku/gigbook/internal/service/venues"
)

type Services struct {
	Venues       *venues.Service
	Artists      *artists.Service
	Shows        *shows.Service
	Availability *availability.Service
}

type Config struct {
	Venues  venues.Config
	Artists artists.Config
	Shows   shows.Config
}

func NewServices(
	store *postgres.Store,
	cache *redis.Cache,
	pubsub *redis.BookingsPubSub,
	cfg Config,
) *Services {
	return &Services{
		Venues:       venues.New(store, cache, pubsub, cfg.Venues),
		Artists:      artists.New(store, cache, pubsub, cfg.Artists),
		Shows:        shows.New(store, cache, pubsub, cfg.Shows),
		Availability: availability.New(store, pubsub),
	}
}
