// Package feedcache holds the single-slot response memo for the public
// content feed. The slot keeps only the most recent (key, payload) pair:
// a lookup hits only when the stored key matches and the entry is younger
// than the TTL. Any mutation that could change what the feed returns must
// call Invalidate.
package feedcache

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"batilink/internal/entity"
)

const DefaultTTL = 30 * time.Second

// FeedFilters is the normalized filter set of a feed query. Build it with
// usecase sanitization before deriving a key: two semantically equal requests
// must produce identical FeedFilters values.
type FeedFilters struct {
	Kind      string
	TagIDs    []string
	CompanyID string
	AuthorID  string
	Search    string
	Page      int
	PageSize  int
}

// Key serializes filters into a deterministic cache key. Tag IDs are sorted
// so that the key is independent of their request order, and zero values are
// canonicalized to the documented defaults.
func Key(f FeedFilters) string {
	tagIDs := append([]string(nil), f.TagIDs...)
	sort.Strings(tagIDs)

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 20
	}

	payload := struct {
		Kind      string   `json:"type"`
		TagIDs    []string `json:"tagIds"`
		CompanyID string   `json:"companyId"`
		AuthorID  string   `json:"authorId"`
		Search    string   `json:"search"`
		Page      int      `json:"page"`
		PageSize  int      `json:"pageSize"`
	}{f.Kind, tagIDs, f.CompanyID, f.AuthorID, f.Search, f.Page, f.PageSize}

	key, _ := json.Marshal(payload)
	return string(key)
}

type Cache struct {
	mu       sync.Mutex
	key      string
	payload  *entity.FeedPage
	storedAt time.Time
	ttl      time.Duration
	now      func() time.Time
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the stored payload only if key matches the stored key and the
// entry has not outlived the TTL.
func (c *Cache) Get(key string) (*entity.FeedPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.payload == nil || c.key != key {
		return nil, false
	}
	if c.now().Sub(c.storedAt) >= c.ttl {
		return nil, false
	}
	return c.payload, true
}

// Set overwrites the slot unconditionally. Last write wins.
func (c *Cache) Set(key string, payload *entity.FeedPage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.payload = payload
	c.storedAt = c.now()
}

// Invalidate clears the slot. Called by every content, tag-link and
// content-media mutation.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = ""
	c.payload = nil
	c.storedAt = time.Time{}
}
