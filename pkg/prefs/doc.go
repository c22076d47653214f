// Package prefs provides a reactive, type-safe preferences facade over a
// pluggable key-value store.
//
// The facade exposes typed reads and writes, per-key change subscriptions,
// convenience batching, and transparent JSON round-tripping of composite
// values (slices and string-keyed maps). Persistence is delegated to a
// kv.Store; in-memory, Redis, PostgreSQL and MongoDB backends ship in the
// sibling kv packages.
//
// # Usage
//
//	import (
//		"github.com/dmitrymomot/prefskit/pkg/kv"
//		"github.com/dmitrymomot/prefskit/pkg/prefs"
//	)
//
//	p := prefs.New(prefs.WithStore(kv.NewMemory()))
//	defer p.Close()
//
//	_ = p.Write(ctx, "theme", "dark")
//	_ = p.Write(ctx, "recent", []any{"a", "b", "c"})
//
//	v, _ := p.Read(ctx, "recent") // []any{"a", "b", "c"}
//
// Typed access goes through descriptors:
//
//	theme := prefs.NewString("theme", "light")
//	v, ok, err := theme.Get(ctx, p)
//	if err == nil && !ok {
//		v = theme.Default // absence is not auto-substituted
//	}
//
// # Subscriptions
//
// Watch delivers the current value (when one exists) followed by every
// subsequent write or remove for the key. A remove is delivered as nil.
//
//	sub, _ := p.Watch(ctx, "theme")
//	defer sub.Close()
//	for v := range sub.Updates() {
//		// v is "dark", then each new value as it is written
//	}
//
// WatchObject converts updates to a concrete type; updates that fail to
// convert are logged and dropped, never delivered and never fatal.
//
// # Serialization semantics
//
// Composite values are stored as JSON text; the store itself only ever sees
// scalars. On read — and before delivery to subscribers — any string value
// is opportunistically decoded: if it parses as JSON the decoded structure
// is returned, otherwise the literal string passes through unchanged.
//
// This makes decoding ambiguous for strings that look like JSON scalars:
// writing the literal string "42" and reading it back yields the number 42.
// This is a deliberate, documented property of the storage convention, not
// a defect. Integral JSON numbers decode as int64, other numbers as float64.
//
// # Concurrency
//
// All methods are safe for concurrent use. The store handle is acquired at
// most once even under concurrent first calls. Writes to the same key are
// last-write-wins; no ordering is guaranteed across keys. Subscription
// delivery is non-blocking: a subscriber whose buffer is full misses the
// update rather than stalling writers.
//
// # Error handling
//
// Writes of unsupported types fail with ErrUnsupportedType and leave the
// store untouched. Store I/O errors propagate unchanged. JSON decode
// failures on read are absorbed (the literal string is returned) and never
// surface as errors.
package prefs
