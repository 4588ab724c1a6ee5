// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/redis/go-redis/v9"
)

// redisSessionStorage keeps sessions as JSON strings under
// "<keyPrefix><sessionID>" with a Redis TTL equal to the session lifetime.
type redisSessionStorage struct {
	client    redis.UniversalClient
	keyPrefix string
	logger    *logger.Logger
}

// NewSessionStorage constructs a Redis-backed [SessionStorage].
func NewSessionStorage(client redis.UniversalClient, keyPrefix string, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating session storage")
	return &redisSessionStorage{
		client:    client,
		keyPrefix: keyPrefix,
		logger:    logger,
	}
}

func (s *redisSessionStorage) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

// SaveSession writes session with the given ttl, replacing any previous value.
func (s *redisSessionStorage) SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	if err = s.client.Set(ctx, s.key(session.ID), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	return nil
}

// GetSession loads a session. [ErrSessionNotFound] is returned when the key
// is missing or the stored session is already expired.
func (s *redisSessionStorage) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.GetSession").Msg("error reading session")
		return nil, fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	session := new(models.Session)
	if err = json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	session.ID = sessionID

	if session.IsExpired() {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes a session. Deleting a missing session is not an error.
func (s *redisSessionStorage) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrRedisUnavailable, err)
	}

	return nil
}
