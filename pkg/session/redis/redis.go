// Package redis provides a Redis-backed session store for hosts that run
// many navigation sessions at once, such as bubbletea apps served over SSH.
// Expiry is delegated to Redis key TTLs.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/matzehuels/navstack/pkg/session"
)

// DefaultKeyPrefix namespaces session keys in Redis.
const DefaultKeyPrefix = "navstack:session:"

// Config configures the Redis connection.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string
	// Password is empty when the server requires none.
	Password string
	// DB selects the logical database.
	DB int
	// KeyPrefix namespaces session keys. Empty means DefaultKeyPrefix.
	KeyPrefix string
}

// Store keeps sessions as JSON values under prefixed keys.
type Store struct {
	client *goredis.Client
	prefix string
}

// NewStore connects to Redis and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}, nil
}

func (s *Store) key(id string) string { return s.prefix + id }

// Get retrieves a session by ID. Missing and expired sessions both return
// nil, nil; Redis drops expired keys itself.
func (s *Store) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if sess.IsExpired() {
		return nil, nil
	}
	return &sess, nil
}

// Set stores a session with a key TTL matching its expiry.
func (s *Store) Set(ctx context.Context, sess *session.Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %q is already expired", sess.ID)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// List returns the IDs of all live sessions, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Cleanup is a no-op: Redis expires session keys itself.
func (s *Store) Cleanup(ctx context.Context) error { return nil }

// Close closes the underlying client.
func (s *Store) Close() error { return s.client.Close() }

var _ session.Store = (*Store)(nil)
