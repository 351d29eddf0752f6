// Package redis implements the Redis-backed account store, session
// pointer, and job board for SkillConnect.
//
// Key layout:
//   - skillconnect:accounts       - JSON array of all accounts
//   - skillconnect:session        - email of the logged-in user
//   - skillconnect:jobs           - JSON array of postings, newest first
//
// Writes use whole-value replacement with last-write-wins semantics.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config holds Redis connection configuration.
type Config struct {
	// Host is the Redis server hostname.
	Host string

	// Port is the Redis server port.
	Port int

	// Password is the Redis authentication password (empty if no auth).
	Password string

	// DB is the Redis database number (0-15).
	DB int

	// PoolSize is the maximum number of socket connections.
	PoolSize int

	// MinIdleConns is the minimum number of idle connections.
	MinIdleConns int

	// MaxRetries is the maximum number of retries before giving up.
	MaxRetries int

	// DialTimeout is the timeout for establishing new connections.
	DialTimeout time.Duration

	// ReadTimeout is the timeout for socket reads.
	ReadTimeout time.Duration

	// WriteTimeout is the timeout for socket writes.
	WriteTimeout time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         6379,
		Password:     "",
		DB:           0,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Addr returns the Redis address in "host:port" format.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrKeyMiss is returned when the requested key is not found.
	ErrKeyMiss = errors.New("store: key not found")

	// ErrConnection is returned when the Redis connection fails.
	ErrConnection = errors.New("store: connection failed")

	// ErrSerialization is returned when JSON encoding/decoding fails.
	ErrSerialization = errors.New("store: serialization failed")

	// ErrKeyEmpty is returned when an empty key is provided.
	ErrKeyEmpty = errors.New("store: key cannot be empty")
)

// ══════════════════════════════════════════════════════════════════════════════
// KEYS
// ══════════════════════════════════════════════════════════════════════════════

const (
	// KeyAccounts holds the JSON array of all accounts.
	KeyAccounts = "skillconnect:accounts"

	// KeySession holds the email of the logged-in user.
	KeySession = "skillconnect:session"

	// KeyJobs holds the JSON array of job postings.
	KeyJobs = "skillconnect:jobs"
)

// ══════════════════════════════════════════════════════════════════════════════
// STORE CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Store wraps the Redis client with JSON serialization and the
// project's key discipline.
type Store struct {
	client *redis.Client
	config Config
}

// NewStore creates a new Store and verifies the connection.
func NewStore(cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &Store{client: client, config: cfg}, nil
}

// Client returns the underlying Redis client for advanced operations.
func (s *Store) Client() *redis.Client {
	return s.client
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ping checks if Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// ══════════════════════════════════════════════════════════════════════════════
// BASIC OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// SetJSON stores a value serialized as JSON. A zero TTL means the key
// never expires; persistent collections use that.
func (s *Store) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if key == "" {
		return ErrKeyEmpty
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

// GetJSON retrieves and deserializes a value by key.
// Returns ErrKeyMiss if the key doesn't exist.
func (s *Store) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if key == "" {
		return ErrKeyEmpty
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrKeyMiss
		}
		return err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return nil
}

// SetString stores a raw string value.
func (s *Store) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return ErrKeyEmpty
	}

	return s.client.Set(ctx, key, value, ttl).Err()
}

// GetString retrieves a raw string value.
// Returns ErrKeyMiss if the key doesn't exist.
func (s *Store) GetString(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrKeyEmpty
	}

	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyMiss
		}
		return "", err
	}

	return val, nil
}

// Delete removes keys. Missing keys are not an error.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return s.client.Del(ctx, keys...).Err()
}

// Exists checks if a key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, ErrKeyEmpty
	}

	count, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// FlushDB removes all keys from the current database.
// Primarily for testing.
func (s *Store) FlushDB(ctx context.Context) error {
	return s.client.FlushDB(ctx).Err()
}
