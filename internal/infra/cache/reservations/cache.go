package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const (
	keyPrefix = "venue-booking:reservations"
	cacheName = "reservation_snapshot"
)

// MetricsRecorder счетчик попаданий и промахов
type MetricsRecorder interface {
	RecordCache(cache string, hit bool)
}

// Cache кэш снимков активных бронирований площадки за день
// С nil-клиентом кэш выключен: Get всегда промах, запись и инвалидация ничего не делают
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics MetricsRecorder
}

// NewCache создает кэш; client и metrics могут быть nil
func NewCache(client *redis.Client, ttl time.Duration, metrics MetricsRecorder) *Cache {
	return &Cache{client: client, ttl: ttl, metrics: metrics}
}

type entry struct {
	ID    int64     `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Get возвращает закэшированные интервалы; ok == false при промахе
func (c *Cache) Get(ctx context.Context, facilityID int64, date string) ([]domain.Interval, bool, error) {
	if c.client == nil {
		return nil, false, nil
	}

	key := Key(facilityID, date)
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.record(false)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshal snapshot %s: %w", key, err)
	}

	c.record(true)
	return fromEntries(entries), true, nil
}

// Set сохраняет снимок на время ttl
func (c *Cache) Set(ctx context.Context, facilityID int64, date string, reservations []*domain.Reservation) error {
	if c.client == nil {
		return nil
	}

	key := Key(facilityID, date)
	payload, err := json.Marshal(toEntries(reservations))
	if err != nil {
		return fmt.Errorf("marshal snapshot %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Invalidate удаляет снимки площадки за указанные даты
func (c *Cache) Invalidate(ctx context.Context, facilityID int64, dates ...string) error {
	if c.client == nil || len(dates) == 0 {
		return nil
	}

	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, Key(facilityID, d))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del %v: %w", keys, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Key ключ снимка площадки за дату (YYYY-MM-DD)
func Key(facilityID int64, date string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, facilityID, date)
}

func (c *Cache) record(hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCache(cacheName, hit)
	}
}

func toEntries(reservations []*domain.Reservation) []entry {
	entries := make([]entry, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, entry{ID: r.ID, Start: r.StartDateTime, End: r.EndDateTime})
	}
	return entries
}

func fromEntries(entries []entry) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(entries))
	for _, e := range entries {
		intervals = append(intervals, domain.Interval{Start: e.Start, End: e.End})
	}
	return intervals
}
