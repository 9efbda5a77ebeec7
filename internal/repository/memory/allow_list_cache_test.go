package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowListCache(t *testing.T) {
	c := NewAllowListCache(time.Minute)

	_, found := c.Get("ops@example.com")
	assert.False(t, found)

	c.Save("Ops@Example.com ", true)
	approved, found := c.Get("ops@example.com")
	assert.True(t, found)
	assert.True(t, approved)

	c.Save("intruder@example.com", false)
	approved, found = c.Get("INTRUDER@example.com")
	assert.True(t, found)
	assert.False(t, approved)

	c.Delete("OPS@example.com")
	_, found = c.Get("ops@example.com")
	assert.False(t, found)

	c.Flush()
	_, found = c.Get("intruder@example.com")
	assert.False(t, found)
}

func TestAllowListCacheExpires(t *testing.T) {
	c := NewAllowListCache(20 * time.Millisecond)
	c.Save("ops@example.com", true)
	time.Sleep(40 * time.Millisecond)
	_, found := c.Get("ops@example.com")
	assert.False(t, found)
}
