// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisTokenKey = "storefront:session:token"
	redisRoleKey  = "storefront:session:role"

	redisOpTimeout = 5 * time.Second
)

// RedisStore keeps the session pair in Redis, for deployments where the
// storefront runs server-side and must survive instance restarts. The two
// keys are always written and deleted together.
type RedisStore struct {
	client *redis.Client

	mu      sync.RWMutex
	current Session
	notifier
}

// NewRedisStore connects to addr, verifies the connection with a ping and
// loads any previously saved session.
func NewRedisStore(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("session: redis ping %s: %w", addr, err)
	}

	rs := &RedisStore{client: client}
	vals, err := client.MGet(ctx, redisTokenKey, redisRoleKey).Result()
	if err != nil {
		return nil, fmt.Errorf("session: redis load: %w", err)
	}
	if s, ok := vals[0].(string); ok {
		rs.current.Token = s
	}
	if s, ok := vals[1].(string); ok {
		rs.current.Role = s
	}
	return rs, nil
}

func (rs *RedisStore) Session() Session {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.current
}

func (rs *RedisStore) Subscribe() (<-chan Session, func()) {
	rs.mu.RLock()
	current := rs.current
	rs.mu.RUnlock()
	return rs.subscribe(current)
}

func (rs *RedisStore) Save(token, role string) error {
	return rs.write(Session{Token: token, Role: role})
}

func (rs *RedisStore) Clear() error {
	return rs.write(Session{})
}

func (rs *RedisStore) write(s Session) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	pipe := rs.client.TxPipeline()
	if s.Token == "" && s.Role == "" {
		pipe.Del(ctx, redisTokenKey, redisRoleKey)
	} else {
		pipe.Set(ctx, redisTokenKey, s.Token, 0)
		pipe.Set(ctx, redisRoleKey, s.Role, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: redis write: %w", err)
	}
	rs.current = s
	rs.publish(s)
	return nil
}

// Close releases the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
