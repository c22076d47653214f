package prefs

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Subscription is a cancellable handle on the stream of updates for one key.
// Updates carry the decoded value after a write, or nil after a remove.
type Subscription struct {
	sub *subscriber
}

// Updates returns the channel updates are delivered on. The channel is
// closed when the subscription is closed.
func (s *Subscription) Updates() <-chan any {
	return s.sub.updates
}

// Key returns the watched key.
func (s *Subscription) Key() string {
	return s.sub.key
}

// ID returns the unique subscription ID.
func (s *Subscription) ID() string {
	return s.sub.id
}

// Close unsubscribes. It is idempotent; once closed, the subscription never
// receives further updates.
func (s *Subscription) Close() error {
	s.sub.close()
	return nil
}

// ObjectSubscription is a Subscription whose updates are converted to a
// concrete type before delivery.
type ObjectSubscription[T any] struct {
	raw     *Subscription
	updates chan T
}

// Updates returns the typed update channel. It is closed when the
// subscription is closed.
func (s *ObjectSubscription[T]) Updates() <-chan T {
	return s.updates
}

// Key returns the watched key.
func (s *ObjectSubscription[T]) Key() string {
	return s.raw.Key()
}

// Close unsubscribes. Idempotent.
func (s *ObjectSubscription[T]) Close() error {
	return s.raw.Close()
}

// WatchObject subscribes to key and converts every update to T before
// delivery. When decode is nil, updates are converted by re-encoding the
// decoded structure as JSON and unmarshalling into T.
//
// A conversion failure is logged through the facade's logger and the update
// is dropped; it never terminates the subscription or reaches the caller.
func WatchObject[T any](ctx context.Context, p *Prefs, key string, decode func(any) (T, error)) (*ObjectSubscription[T], error) {
	raw, err := p.Watch(ctx, key)
	if err != nil {
		return nil, err
	}

	if decode == nil {
		decode = decodeJSONObject[T]
	}

	out := make(chan T, p.bufferSize)
	go func() {
		defer close(out)
		for v := range raw.Updates() {
			obj, err := decode(v)
			if err != nil {
				p.log.WarnContext(ctx, "dropping preference update: conversion failed",
					slog.String("key", key),
					slog.Any("error", err))
				continue
			}
			select {
			case out <- obj:
			default:
				// Slow consumer; drop rather than block the forwarder.
			}
		}
	}()

	return &ObjectSubscription[T]{raw: raw, updates: out}, nil
}

func decodeJSONObject[T any](v any) (T, error) {
	var obj T
	b, err := json.Marshal(v)
	if err != nil {
		return obj, err
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return obj, err
	}
	return obj, nil
}
