package prefs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/prefskit/pkg/kv"
)

const defaultBufferSize = 16

// Prefs is the preferences facade: typed reads and writes over a kv.Store
// plus per-key change subscriptions. Create one instance per store and share
// it; all methods are safe for concurrent use.
//
// The store handle is acquired lazily on first use and exactly once, even
// under concurrent first calls. With neither WithStore nor WithConnect an
// in-memory store is used.
type Prefs struct {
	connect    func(ctx context.Context) (kv.Store, error)
	store      kv.Store
	initErr    error
	initOnce   sync.Once
	log        *slog.Logger
	bufferSize int
	reg        *registry
}

// Option configures a Prefs instance.
type Option func(*Prefs)

// WithStore supplies an already-acquired store handle.
func WithStore(store kv.Store) Option {
	return func(p *Prefs) {
		if store != nil {
			p.store = store
		}
	}
}

// WithConnect supplies a store factory invoked lazily on first use. It is
// called at most once; a connect failure is sticky and returned by every
// subsequent operation.
func WithConnect(connect func(ctx context.Context) (kv.Store, error)) Option {
	return func(p *Prefs) {
		if connect != nil {
			p.connect = connect
		}
	}
}

// WithLogger sets the logger used for dropped object-conversion updates.
func WithLogger(log *slog.Logger) Option {
	return func(p *Prefs) {
		if log != nil {
			p.log = log
		}
	}
}

// WithBufferSize sets the per-subscription channel buffer. Updates beyond a
// full buffer are dropped for that subscriber rather than blocking writers.
func WithBufferSize(n int) Option {
	return func(p *Prefs) {
		if n > 0 {
			p.bufferSize = n
		}
	}
}

// New creates a preferences facade.
func New(opts ...Option) *Prefs {
	p := &Prefs{
		log:        slog.Default(),
		bufferSize: defaultBufferSize,
		reg:        newRegistry(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Init acquires the store handle. Calling it is optional: every operation
// initializes implicitly. Subsequent calls are no-ops.
func (p *Prefs) Init(ctx context.Context) error {
	_, err := p.ensure(ctx)
	return err
}

func (p *Prefs) ensure(ctx context.Context) (kv.Store, error) {
	p.initOnce.Do(func() {
		if p.store != nil {
			return
		}
		if p.connect == nil {
			p.store = kv.NewMemory()
			return
		}
		p.store, p.initErr = p.connect(ctx)
	})
	return p.store, p.initErr
}

// Write persists value under key and, on success, publishes the original
// (pre-serialization) value to the key's subscribers. Scalars map to the
// store's typed setters; slices, arrays and string-keyed maps are
// JSON-encoded and stored as strings. Any other type fails with
// ErrUnsupportedType before any store mutation and without a publish.
// Store-level errors propagate unchanged.
func (p *Prefs) Write(ctx context.Context, key string, value any) error {
	st, err := p.ensure(ctx)
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case string:
		err = st.SetString(ctx, key, v)
	case bool:
		err = st.SetBool(ctx, key, v)
	case int:
		err = st.SetInt(ctx, key, int64(v))
	case int32:
		err = st.SetInt(ctx, key, int64(v))
	case int64:
		err = st.SetInt(ctx, key, v)
	case float32:
		err = st.SetFloat(ctx, key, float64(v))
	case float64:
		err = st.SetFloat(ctx, key, v)
	default:
		var encoded string
		encoded, err = encodeValue(value)
		if err != nil {
			return err
		}
		err = st.SetString(ctx, key, encoded)
	}
	if err != nil {
		return err
	}

	p.reg.publish(key, value)
	return nil
}

// encodeValue JSON-encodes a composite value, rejecting everything that is
// neither a sequence nor a string-keyed map.
func encodeValue(value any) (string, error) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", fmt.Errorf("%w: map key type %s", ErrUnsupportedType, rv.Type().Key())
		}
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	encoded, err := encodeComposite(value)
	if err != nil {
		return "", errors.Join(ErrUnsupportedType, err)
	}
	return encoded, nil
}

// Read fetches the raw stored value. String values are opportunistically
// JSON-decoded: on success the decoded structure is returned, on failure the
// literal string is returned unchanged and the decode failure is absorbed.
// An unset key yields (nil, nil); descriptor defaults are not substituted.
func (p *Prefs) Read(ctx context.Context, key string) (any, error) {
	st, err := p.ensure(ctx)
	if err != nil {
		return nil, err
	}

	v, err := st.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		v, _ = tryDecode(s)
	}
	return v, nil
}

// Remove deletes the key from the store and publishes nil (the absence
// signal) to the key's subscribers.
func (p *Prefs) Remove(ctx context.Context, key string) error {
	st, err := p.ensure(ctx)
	if err != nil {
		return err
	}

	if err := st.Remove(ctx, key); err != nil {
		return err
	}

	p.reg.publish(key, nil)
	return nil
}

// Keys lists all stored keys.
func (p *Prefs) Keys(ctx context.Context) ([]string, error) {
	st, err := p.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return st.Keys(ctx)
}

// Batch runs fn against the facade after a single initialization check.
// It is a convenience for issuing several writes together and provides no
// atomicity or rollback: a failure partway leaves earlier writes committed,
// and concurrent writers outside fn may interleave.
func (p *Prefs) Batch(ctx context.Context, fn func(p *Prefs) error) error {
	if _, err := p.ensure(ctx); err != nil {
		return err
	}
	return fn(p)
}

// Watch subscribes to changes of key. If the key currently holds a value it
// is delivered to the new subscription before any subsequent update. The
// subscription is closed when ctx is cancelled or Close is called.
func (p *Prefs) Watch(ctx context.Context, key string) (*Subscription, error) {
	st, err := p.ensure(ctx)
	if err != nil {
		return nil, err
	}

	sub := p.reg.newSubscriber(key, p.bufferSize)

	// Current value is delivered before registration so it always precedes
	// updates published after this call.
	cur, err := st.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if cur != nil {
		v := cur
		if s, ok := cur.(string); ok {
			v, _ = tryDecode(s)
		}
		sub.send(v)
	}

	p.reg.register(sub)

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				sub.close()
			case <-sub.done:
			}
		}()
	}

	return &Subscription{sub: sub}, nil
}

// UnwatchAll closes every subscription for key.
func (p *Prefs) UnwatchAll(key string) {
	p.reg.unsubscribeAll(key)
}

// Dispose closes every subscription for every key. The facade remains
// usable; new subscriptions can be created afterwards.
func (p *Prefs) Dispose() {
	p.reg.disposeAll()
}

// Close disposes all subscriptions and closes the store handle if one was
// acquired. Closing a facade that never initialized marks it closed without
// acquiring a handle; later operations return ErrClosed.
func (p *Prefs) Close() error {
	p.Dispose()

	p.initOnce.Do(func() {
		p.initErr = ErrClosed
	})
	if p.store != nil {
		return p.store.Close()
	}
	return nil
}
