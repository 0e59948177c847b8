package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key from an arbitrary identifier
// (a page title, a dump URL, a text hash).
func Key(id string) string {
	hash := sha256.Sum256([]byte(id))
	return "wikidump:v1:" + hex.EncodeToString(hash[:])
}
