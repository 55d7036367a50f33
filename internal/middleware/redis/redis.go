// Package redis is implementation of response cache storage over redis.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "middleware").WithField("package", "redis")

const keyPrefix = "plutus:cache:"

// Storage ...
type Storage struct {
	c redis.Cmdable
}

// NewStorage returns storage over c.
func NewStorage(c redis.Cmdable) *Storage {
	return &Storage{c: c}
}

// Get returns nil on miss and on redis errors, so unavailable redis only disables caching.
func (s *Storage) Get(ctx context.Context, key string) []byte {
	b, err := s.c.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.WithError(err).WithField("key", key).Error("failed to get cached response")
		}
		return nil
	}

	return b
}

// Set ...
func (s *Storage) Set(ctx context.Context, key string, content []byte, duration time.Duration) {
	if err := s.c.Set(ctx, keyPrefix+key, content, duration).Err(); err != nil {
		log.WithError(err).WithField("key", key).Error("failed to cache response")
	}
}
