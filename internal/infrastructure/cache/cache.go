// Package cache stores rendered summary results keyed by input hash.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Store is a string key-value store with per-entry expiration.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// SummaryKey derives the cache key for a summarization input. The parts are
// length-prefixed so ("ab","c") and ("a","bc") differ.
func SummaryKey(parts ...string) string {
	h := sha256.New()
	var size [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range size {
			size[i] = byte(n >> (8 * i))
		}
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return "summary:" + hex.EncodeToString(h.Sum(nil))
}
