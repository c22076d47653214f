package kvmongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/prefskit/pkg/kv"
)

const (
	defaultDatabase   = "prefs"
	defaultCollection = "preferences"
)

// record is the document shape: one document per preference key, with a
// scalar kind tag and the value in textual form.
type record struct {
	Key   string `bson:"_id"`
	Kind  int32  `bson:"kind"`
	Value string `bson:"value"`
}

// Store implements kv.Store on top of MongoDB.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ kv.Store = (*Store)(nil)

// New wraps an existing client. Empty Database/Collection config fields
// fall back to "prefs" and "preferences".
func New(client *mongo.Client, cfg Config) *Store {
	db := cfg.Database
	if db == "" {
		db = defaultDatabase
	}
	coll := cfg.Collection
	if coll == "" {
		coll = defaultCollection
	}
	return &Store{
		client: client,
		coll:   client.Database(db).Collection(coll),
	}
}

// Get returns the raw stored value, or (nil, nil) when the key is absent.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return kv.ParseScalar(kv.Kind(rec.Kind), rec.Value)
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

	rec := record{Key: key, Kind: int32(kind), Value: text}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": key}, rec, options.Replace().SetUpsert(true))
	return err
}

// Remove deletes the key. Deleting an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Keys lists all stored keys.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var keys []string
	for cursor.Next(ctx) {
		var rec record
		if err := cursor.Decode(&rec); err != nil {
			return nil, err
		}
		keys = append(keys, rec.Key)
	}
	return keys, cursor.Err()
}

// Close disconnects the underlying client.
func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
