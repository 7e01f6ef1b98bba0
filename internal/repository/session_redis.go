package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedback_app/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	sessionKeyPrefix     = "session:"
	userSessionKeyPrefix = "user_sessions:"
)

// SessionRedis keeps sessions in Redis; expiry is delegated to key TTLs.
type SessionRedis struct {
	client *redis.Client
	now    func() time.Time
}

func NewSessionRedis(client *redis.Client) *SessionRedis {
	return &SessionRedis{client: client, now: time.Now}
}

var _ SessionRepo = (*SessionRedis)(nil)

type redisSession struct {
	Username string   `json:"username"`
	Flashes  []string `json:"flashes,omitempty"`
	Expires  int64    `json:"expires_at"`
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

// userSessionsKey names the set of session ids logged in as username.
func userSessionsKey(username string) string { return userSessionKeyPrefix + username }

func (r *SessionRedis) Get(ctx context.Context, id string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var v redisSession
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode redis session: %w", err)
	}
	return &models.Session{
		ID:        id,
		Username:  v.Username,
		Flashes:   v.Flashes,
		ExpiresAt: time.Unix(v.Expires, 0).UTC(),
	}, nil
}

func (r *SessionRedis) Save(ctx context.Context, s models.Session) error {
	ttl := s.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return r.Delete(ctx, s.ID)
	}

	b, err := json.Marshal(redisSession{Username: s.Username, Flashes: s.Flashes, Expires: s.ExpiresAt.Unix()})
	if err != nil {
		return fmt.Errorf("encode redis session: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(s.ID), b, ttl)
		if s.Username != "" {
			// every session shares one ttl, so the newest save outlives the rest
			pipe.SAdd(ctx, userSessionsKey(s.Username), s.ID)
			pipe.Expire(ctx, userSessionsKey(s.Username), ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// DeleteByUsername removes every session indexed under username.
func (r *SessionRedis) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	ids, err := r.client.SMembers(ctx, userSessionsKey(username)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis list sessions of %q: %w", username, err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, userSessionsKey(username))

	n, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, fmt.Errorf("redis del sessions of %q: %w", username, err)
	}
	if len(ids) > 0 {
		n-- // the index key itself
	}
	return n, nil
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (r *SessionRedis) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
