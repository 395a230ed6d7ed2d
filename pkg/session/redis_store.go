package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "user_sessions:"
)

// RedisStore implements Store on Redis. Expiry is delegated to Redis TTLs,
// so expired sessions disappear without a sweeper. A per-user set indexes
// tokens for DeleteByUserID.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.Token, data, ttl)
	if session.UserID != nil {
		userKey := userIndexPrefix + session.UserID.String()
		pipe.SAdd(ctx, userKey, session.Token)
		pipe.Expire(ctx, userKey, ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}

	// Redis TTLs normally reap expired keys, but the payload can outlive its
	// own expiry while the key still exists (clock skew against the Redis
	// server, lazy expiration). Remove the stale record directly; routing
	// through Delete would re-read the key.
	if session.IsExpired() {
		_ = s.remove(ctx, &session)
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (s *RedisStore) Update(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	key := sessionKeyPrefix + session.Token
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) UpdateActivity(ctx context.Context, token string, lastActivity time.Time) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		return err
	}

	session.LastActivityAt = lastActivity
	return s.Update(ctx, session)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	// Read the raw record rather than going through Get: Get deletes expired
	// records itself, and an expired-but-present key must still be removable.
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return errors.Join(ErrStoreUnavailable, err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// Unreadable payload: drop the key; the user index entry cannot be
		// recovered without it and expires on its own TTL.
		if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			return errors.Join(ErrStoreUnavailable, err)
		}
		return nil
	}

	return s.remove(ctx, &session)
}

// remove deletes the session key and its user index entry in one pipeline.
func (s *RedisStore) remove(ctx context.Context, session *Session) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+session.Token)
	if session.UserID != nil {
		pipe.SRem(ctx, userIndexPrefix+session.UserID.String(), session.Token)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

func (s *RedisStore) DeleteByUserID(ctx context.Context, userID string) error {
	userKey := userIndexPrefix + userID

	tokens, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}

	if len(tokens) == 0 {
		return nil
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKeyPrefix+token)
	}
	keys = append(keys, userKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
