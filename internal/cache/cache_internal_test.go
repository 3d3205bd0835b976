package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

// A Set that lands between an expired read and the delayed delete must keep
// its fresh entry.
func TestExpireIfStaleKeepsFreshEntry(t *testing.T) {
	clk := &stubClock{now: time.Unix(0, 0)}
	c := New(time.Minute, clk)

	c.Set("k", "stale")
	clk.now = clk.now.Add(2 * time.Minute)

	// The entry is expired now; refresh it the way a racing Set would before
	// the expiry delete runs.
	c.Set("k", "fresh")
	c.expireIfStale("k")

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "fresh", v)
}

func TestExpireIfStaleDeletesExpiredEntry(t *testing.T) {
	clk := &stubClock{now: time.Unix(0, 0)}
	c := New(time.Minute, clk)

	c.Set("k", "stale")
	clk.now = clk.now.Add(2 * time.Minute)
	c.expireIfStale("k")

	c.mu.RLock()
	_, ok := c.entries["k"]
	c.mu.RUnlock()
	assert.False(t, ok)
}
