// Package storage provides the durable string key-value store the client
// keeps its session and theme state in. Values survive process restarts;
// readers treat an absent key and a present key identically typed.
package storage

import "context"

// KV is a string-keyed, string-valued durable store.
//
// Get reports presence explicitly: a missing key is (value="", ok=false, err=nil),
// never an error. SetMany and DeleteMany are atomic: either every key is
// written/removed or none is.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	SetMany(ctx context.Context, values map[string]string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
