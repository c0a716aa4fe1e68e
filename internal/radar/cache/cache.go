// Package cache holds radar profiles close to the read path. Entries are
// derived data: erasure deletes them and a miss falls back to the store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"radar/internal/radar/models"
	id "radar/pkg/domain"
)

const keyPrefix = "radar:profile:"

func key(participantID id.ParticipantID) string {
	return keyPrefix + participantID.String()
}

func encode(p *models.Profile) ([]byte, error) {
	return json.Marshal(models.ToResponse(p))
}

func decode(raw []byte) (*models.Profile, error) {
	var e models.ProfileResponse
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	pid, err := id.ParseParticipantID(e.ParticipantID)
	if err != nil {
		return nil, err
	}
	dims := make(map[models.Dimension]float64, len(e.Dimensions))
	for d, v := range e.Dimensions {
		dims[models.Dimension(d)] = v
	}
	return &models.Profile{ParticipantID: pid, Dimensions: dims, ComputedAt: e.ComputedAt}, nil
}

// RedisCache stores profiles as JSON strings with a TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedis(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, participantID id.ParticipantID) (*models.Profile, bool, error) {
	raw, err := c.client.Get(ctx, key(participantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get radar profile: %w", err)
	}
	p, err := decode(raw)
	if err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return p, true, nil
}

func (c *RedisCache) Set(ctx context.Context, p *models.Profile) error {
	raw, err := encode(p)
	if err != nil {
		return fmt.Errorf("encode radar profile: %w", err)
	}
	if err := c.client.Set(ctx, key(p.ParticipantID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set radar profile: %w", err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, participantID id.ParticipantID) error {
	if err := c.client.Del(ctx, key(participantID)).Err(); err != nil {
		return fmt.Errorf("redis delete radar profile: %w", err)
	}
	return nil
}

// MemoryCache is the single-process fallback when Redis is not configured.
type MemoryCache struct {
	c *gocache.Cache
}

func NewMemory(ttl time.Duration) *MemoryCache {
	return &MemoryCache{c: gocache.New(ttl, time.Minute)}
}

func (m *MemoryCache) Get(_ context.Context, participantID id.ParticipantID) (*models.Profile, bool, error) {
	v, ok := m.c.Get(key(participantID))
	if !ok {
		return nil, false, nil
	}
	p, ok := v.(models.Profile)
	if !ok {
		return nil, false, nil
	}
	return cloneProfile(&p), true, nil
}

func (m *MemoryCache) Set(_ context.Context, p *models.Profile) error {
	m.c.Set(key(p.ParticipantID), *cloneProfile(p), gocache.DefaultExpiration)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, participantID id.ParticipantID) error {
	m.c.Delete(key(participantID))
	return nil
}

func cloneProfile(p *models.Profile) *models.Profile {
	cp := *p
	cp.Dimensions = make(map[models.Dimension]float64, len(p.Dimensions))
	for d, v := range p.Dimensions {
		cp.Dimensions[d] = v
	}
	return &cp
}
