package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// BookingsPubSub broadcasts booking-data changes so every instance drops
// its cached pages, not just the one that handled the write.
type BookingsPubSub struct {
	rdb     *redis.Client
	channel string
}

func NewBookingsPubSub(rdb *redis.Client) *BookingsPubSub {
	return &BookingsPubSub{
		rdb:     rdb,
		channel: ChannelBookingsChanged(),
	}
}

// ChangedMsg names the entity a committed write touched.
type ChangedMsg struct {
	Entity string `json:"entity"` // "venue" | "artist" | "show"
	ID     int64  `json:"id"`
	TsUnix int64  `json:"ts_unix"`
}

func (p *BookingsPubSub) PublishChanged(ctx context.Context, entity string, id int64) error {
	msg := ChangedMsg{
		Entity: entity,
		ID:     id,
		TsUnix: time.Now().Unix(),
	}

	b, _ := json.Marshal(msg)

	return p.rdb.Publish(ctx, p.channel, b).Err()
}

func (p *BookingsPubSub) Subscribe(ctx context.Context, handler func(ctx context.Context, msg ChangedMsg)) error {
	sub := p.rdb.Subscribe(ctx, p.channel)
	defer sub.Close()

	ch := sub.Channel(redis.WithChannelSize(256))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg ChangedMsg
			if err := json.Unmarshal([]byte(m.Payload), &msg); err == nil &&
				msg.Entity != "" {
				handler(ctx, msg)
			}
		}
	}
}
