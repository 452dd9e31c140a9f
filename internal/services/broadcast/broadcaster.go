package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jwebster45206/star-drifter/pkg/notify"
	"github.com/redis/go-redis/v9"
)

// EventType is the envelope type published on the session channel.
type EventType string

const EventTypeNotification EventType = "session.notification"

// Event is the JSON envelope published for each notification.
type Event struct {
	Type         EventType           `json:"type"`
	SessionID    string              `json:"session_id"`
	Notification notify.Notification `json:"notification"`
}

// Broadcaster publishes session notifications to Redis Pub/Sub and keeps a
// capped list of recent outcomes per session.
type Broadcaster struct {
	client *Client
	limit  int64
	logger *slog.Logger
}

// NewBroadcaster creates a broadcaster keeping at most limit outcomes per session.
func NewBroadcaster(client *Client, limit int64, logger *slog.Logger) *Broadcaster {
	if limit <= 0 {
		limit = 100
	}
	return &Broadcaster{
		client: client,
		limit:  limit,
		logger: logger,
	}
}

// ChannelKey is the Pub/Sub channel for a session.
func ChannelKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("game-events:%s", sessionID.String())
}

// OutcomesKey is the list holding a session's recent outcomes.
func OutcomesKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("outcomes:%s", sessionID.String())
}

// Publish sends every notification in batch, in order.
func (b *Broadcaster) Publish(ctx context.Context, sessionID uuid.UUID, batch []notify.Notification) error {
	if len(batch) == 0 {
		return nil
	}

	channel := ChannelKey(sessionID)
	key := OutcomesKey(sessionID)

	payloads := make([]any, 0, len(batch))
	for _, n := range batch {
		data, err := json.Marshal(Event{
			Type:         EventTypeNotification,
			SessionID:    sessionID.String(),
			Notification: n,
		})
		if err != nil {
			b.logger.Error("Failed to marshal notification", "error", err, "kind", n.Kind)
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		payloads = append(payloads, data)
	}

	_, err := b.client.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, p := range payloads {
			pipe.Publish(ctx, channel, p)
		}
		pipe.RPush(ctx, key, payloads...)
		pipe.LTrim(ctx, key, -b.limit, -1)
		return nil
	})
	if err != nil {
		b.logger.Error("Failed to publish notifications", "error", err, "channel", channel)
		return fmt.Errorf("failed to publish notifications: %w", err)
	}

	b.logger.Debug("Notifications published",
		"channel", channel,
		"count", len(batch))
	return nil
}

// Recent returns up to n of the most recent outcomes for a session, oldest
// first. n <= 0 returns everything kept.
func (b *Broadcaster) Recent(ctx context.Context, sessionID uuid.UUID, n int64) ([]notify.Notification, error) {
	start := int64(0)
	if n > 0 {
		start = -n
	}
	raw, err := b.client.rdb.LRange(ctx, OutcomesKey(sessionID), start, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read outcomes: %w", err)
	}

	out := make([]notify.Notification, 0, len(raw))
	for _, r := range raw {
		var ev Event
		if err := json.Unmarshal([]byte(r), &ev); err != nil {
			return nil, fmt.Errorf("failed to parse outcome: %w", err)
		}
		out = append(out, ev.Notification)
	}
	return out, nil
}

// Clear removes a session's outcome log.
func (b *Broadcaster) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := b.client.rdb.Del(ctx, OutcomesKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear outcomes: %w", err)
	}
	return nil
}
