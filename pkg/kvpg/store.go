package kvpg

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/prefskit/pkg/kv"
)

const defaultTable = "preferences"

// Table names are interpolated into SQL, so only plain identifiers are
// accepted.
var tableNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Store implements kv.Store on top of PostgreSQL.
//
// Each preference occupies one row of a three-column table: the key, a
// scalar kind tag, and the value in textual form. Writes are upserts, so
// overwriting a key with a different kind just replaces the row.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

var _ kv.Store = (*Store)(nil)

// New wraps an existing connection pool using the default table name.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, table: defaultTable}
}

// NewWithConfig wraps an existing connection pool using the table name
// from cfg.
func NewWithConfig(pool *pgxpool.Pool, cfg Config) (*Store, error) {
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return &Store{pool: pool, table: table}, nil
}

// EnsureSchema creates the preferences table when it doesn't exist yet.
// Call it once during application bootstrap.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key   TEXT PRIMARY KEY,
			kind  SMALLINT NOT NULL,
			value TEXT NOT NULL
		)`, s.table))
	return err
}

// Get returns the raw stored value, or (nil, nil) when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	var (
		kind int16
		text string
	)
	query := fmt.Sprintf(`SELECT kind, value FROM %s WHERE key = $1`, s.table)
	err := s.pool.QueryRow(ctx, query, key).Scan(&kind, &text)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return kv.ParseScalar(kv.Kind(kind), text)
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
	text, err := kv.FormatScalar(kind, value)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (key, kind, value) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET kind = EXCLUDED.kind, value = EXCLUDED.value`,
		s.table)
	_, err = s.pool.Exec(ctx, query, key, int16(kind), text)
	return err
}

// Remove deletes the key. Deleting an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, s.table)
	_, err := s.pool.Exec(ctx, query, key)
	return err
}

// Keys lists all stored keys.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(`SELECT key FROM %s`, s.table)
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Close releases the connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}
