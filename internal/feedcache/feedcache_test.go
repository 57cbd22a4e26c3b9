package feedcache

import (
	"testing"
	"time"

	"batilink/internal/entity"

	"github.com/stretchr/testify/assert"
)

func testPage() *entity.FeedPage {
	return &entity.FeedPage{
		Page:     1,
		PageSize: 20,
		HasMore:  false,
		Items:    []entity.ContentView{},
	}
}

func TestKey_Deterministic(t *testing.T) {
	a := Key(FeedFilters{Kind: "POST", TagIDs: []string{"b", "a"}, Page: 1, PageSize: 20})
	b := Key(FeedFilters{Kind: "POST", TagIDs: []string{"a", "b"}, Page: 1, PageSize: 20})

	assert.Equal(t, a, b)
}

func TestKey_DefaultsCollapse(t *testing.T) {
	// Omitted page/pageSize and explicit defaults must produce the same key.
	a := Key(FeedFilters{Kind: "POST"})
	b := Key(FeedFilters{Kind: "POST", Page: 1, PageSize: 20})

	assert.Equal(t, a, b)
}

func TestKey_DistinctFilters(t *testing.T) {
	a := Key(FeedFilters{Kind: "POST"})
	b := Key(FeedFilters{Kind: "TENDER"})

	assert.NotEqual(t, a, b)
}

func TestGet_EmptyCache(t *testing.T) {
	c := New(DefaultTTL)

	_, ok := c.Get(Key(FeedFilters{}))
	assert.False(t, ok)
}

func TestSetGet_RoundTrip(t *testing.T) {
	c := New(DefaultTTL)
	key := Key(FeedFilters{Kind: "POST"})
	page := testPage()

	c.Set(key, page)

	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, page, got)
}

func TestGet_KeyMismatch(t *testing.T) {
	c := New(DefaultTTL)
	c.Set(Key(FeedFilters{Kind: "POST"}), testPage())

	_, ok := c.Get(Key(FeedFilters{Kind: "TENDER"}))
	assert.False(t, ok)
}

func TestGet_SingleSlot_LastWriteWins(t *testing.T) {
	c := New(DefaultTTL)
	keyA := Key(FeedFilters{Kind: "POST"})
	keyB := Key(FeedFilters{Kind: "TENDER"})

	c.Set(keyA, testPage())
	c.Set(keyB, testPage())

	_, ok := c.Get(keyA)
	assert.False(t, ok)

	_, ok = c.Get(keyB)
	assert.True(t, ok)
}

func TestGet_TTLBoundaries(t *testing.T) {
	c := New(30 * time.Second)

	base := time.Now()
	now := base
	c.now = func() time.Time { return now }

	key := Key(FeedFilters{Kind: "POST"})
	c.Set(key, testPage())

	// just inside the TTL
	now = base.Add(30*time.Second - time.Millisecond)
	_, ok := c.Get(key)
	assert.True(t, ok)

	// just past the TTL
	now = base.Add(30*time.Second + time.Millisecond)
	_, ok = c.Get(key)
	assert.False(t, ok)
}

func TestInvalidate(t *testing.T) {
	c := New(DefaultTTL)
	key := Key(FeedFilters{Kind: "POST"})

	c.Set(key, testPage())
	c.Invalidate()

	_, ok := c.Get(key)
	assert.False(t, ok)
}
