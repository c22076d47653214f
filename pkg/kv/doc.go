// Package kv defines the key-value store abstraction the preferences
// facade persists into, plus an in-memory implementation.
//
// A Store holds scalar values (string, int64, float64, bool) under string
// keys. Composite values never reach a Store directly; the prefs package
// serializes them to strings first. The interface therefore only deals in
// the four scalar kinds.
//
// # Absence
//
// A key that was never written is signalled as (nil, nil) by Get and as
// (zero, false, nil) by the typed getters. Absence is not an error; only
// backend I/O failures produce errors, and they are returned unchanged.
//
// # Backends
//
// The in-memory Memory store lives here. Redis, PostgreSQL and MongoDB
// backends live in the sibling kvredis, kvpg and kvmongo packages so that
// importing this package doesn't pull in any driver dependencies.
//
// Backends that can only persist text store a Kind tag next to the textual
// value form; FormatScalar and ParseScalar implement that mapping so all
// text-based backends agree on the format.
//
// # Usage
//
//	store := kv.NewMemory()
//	_ = store.SetInt(ctx, "volume", 7)
//
//	v, _ := store.Get(ctx, "volume") // int64(7)
//	n, ok, _ := store.GetInt(ctx, "volume")
package kv
