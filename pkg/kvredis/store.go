package kvredis

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/prefskit/pkg/kv"
)

const (
	defaultKeyPrefix     = "prefs:"
	defaultScanBatchSize = 1000
)

// Store implements kv.Store on top of Redis.
//
// Redis only stores text, so every value is persisted as a kind-tagged
// record "<code>:<text>" (e.g. "i:42", "b:true"); reads restore the
// original scalar type from the tag. Keys are namespaced with a prefix so
// multiple applications can share one database.
type Store struct {
	db            redis.UniversalClient
	keyPrefix     string
	scanBatchSize int64
}

var _ kv.Store = (*Store)(nil)

// New wraps an existing Redis client with default prefix and scan settings.
func New(client redis.UniversalClient) *Store {
	return &Store{
		db:            client,
		keyPrefix:     defaultKeyPrefix,
		scanBatchSize: defaultScanBatchSize,
	}
}

// NewWithConfig wraps an existing Redis client using prefix and scan
// settings from cfg.
func NewWithConfig(client redis.UniversalClient, cfg Config) *Store {
	s := New(client)
	if cfg.KeyPrefix != "" {
		s.keyPrefix = cfg.KeyPrefix
	}
	if cfg.ScanBatchSize > 0 {
		s.scanBatchSize = int64(cfg.ScanBatchSize)
	}
	return s
}

// Get returns the raw stored value, or (nil, nil) when the key is absent
// (redis.Nil is absorbed, matching the kv.Store absence contract).
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	raw, err := s.db.Get(ctx, s.keyPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	return kv.GetTyped[string](ctx, s, key)
}

func (s *Store) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return kv.GetTyped[int64](ctx, s, key)
}

func (s *Store) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return kv.GetTyped[float64](ctx, s, key)
}

func (s *Store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	return kv.GetTyped[bool](ctx, s, key)
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	return s.set(ctx, key, kv.KindString, value)
}

func (s *Store) SetInt(ctx context.Context, key string, value int64) error {
	return s.set(ctx, key, kv.KindInt, value)
}

func (s *Store) SetFloat(ctx context.Context, key string, value float64) error {
	return s.set(ctx, key, kv.KindFloat, value)
}

func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	return s.set(ctx, key, kv.KindBool, value)
}

func (s *Store) set(ctx context.Context, key string, kind kv.Kind, value any) error {
	record, err := encodeRecord(kind, value)
	if err != nil {
		return err
	}
	return s.db.Set(ctx, s.keyPrefix+key, record, 0).Err()
}

// Remove deletes the key. Deleting an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.Del(ctx, s.keyPrefix+key).Err()
}

// Keys lists all stored keys (prefix stripped) using cursor-based SCAN to
// avoid blocking the server on large keyspaces.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.keyPrefix+"*", s.scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range batch {
			keys = append(keys, strings.TrimPrefix(k, s.keyPrefix))
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Close closes the underlying Redis client.
func (s *Store) Close() error {
	return s.db.Close()
}

func encodeRecord(kind kv.Kind, value any) (string, error) {
	text, err := kv.FormatScalar(kind, value)
	if err != nil {
		return "", err
	}
	return string(kind.Code()) + ":" + text, nil
}

func decodeRecord(raw string) (any, error) {
	if len(raw) < 2 || raw[1] != ':' {
		return nil, fmt.Errorf("%w: malformed record %q", kv.ErrUnknownKind, raw)
	}
	kind, err := kv.KindFromCode(raw[0])
	if err != nil {
		return nil, err
	}
	return kv.ParseScalar(kind, raw[2:])
}
