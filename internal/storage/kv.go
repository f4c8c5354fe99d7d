// Package storage holds the key-value backends that play the role of the
// browser's local storage: every value is a UTF-8 JSON document under a fixed key.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Listener is told about every key that was successfully written or removed.
type Listener func(key string)

type notifying struct {
	KV
	listener Listener
}

// WithListener wraps kv so that listener runs after each successful Set or Remove.
func WithListener(kv KV, listener Listener) KV {
	if listener == nil {
		return kv
	}
	return &notifying{KV: kv, listener: listener}
}

func (n *notifying) Set(ctx context.Context, key, value string) error {
	if err := n.KV.Set(ctx, key, value); err != nil {
		return err
	}
	n.listener(key)
	return nil
}

func (n *notifying) Remove(ctx context.Context, key string) error {
	if err := n.KV.Remove(ctx, key); err != nil {
		return err
	}
	n.listener(key)
	return nil
}
