// Package rendercache keeps rendered page bodies keyed by page and language.
//
// Page renders are deterministic, so a cached body is interchangeable with a
// fresh render of the same key.
package rendercache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Entry is one rendered body and its strong ETag.
type Entry struct {
	Body []byte
	ETag string
}

// Cache is a bounded LRU of rendered entries. A zero-size cache renders on
// every call.
type Cache struct {
	entries *lru.Cache
}

// New creates a cache holding up to size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		return &Cache{}, nil
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create render cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Key builds the cache key for a page in a language.
func Key(slug, lang string) string {
	return slug + "|" + lang
}

// GetOrRender returns the cached entry for key or stores the result of render.
// Render errors are not cached.
func (c *Cache) GetOrRender(key string, render func() ([]byte, error)) (Entry, error) {
	if c != nil && c.entries != nil {
		if cached, ok := c.entries.Get(key); ok {
			if entry, ok := cached.(Entry); ok {
				return entry, nil
			}
		}
	}
	body, err := render()
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{Body: body, ETag: ETag(body)}
	if c != nil && c.entries != nil {
		c.entries.Add(key, entry)
	}
	return entry, nil
}

// ETag returns a strong entity tag for body.
func ETag(body []byte) string {
	sum := sha256.Sum256(body)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}
