package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCache_SetGet(t *testing.T) {
	c := NewSnapshotCache(time.Minute)

	_, ok := c.Get("pin:1")
	assert.False(t, ok)

	c.Set("pin:1", "Old Quarter")
	v, ok := c.Get("pin:1")
	assert.True(t, ok)
	assert.Equal(t, "Old Quarter", v)

	c.Set("pin:1", "New Quarter")
	v, _ = c.Get("pin:1")
	assert.Equal(t, "New Quarter", v)
}

func TestSnapshotCache_Expires(t *testing.T) {
	c := NewSnapshotCache(20 * time.Millisecond)
	c.Set("user:1", "Lan")

	time.Sleep(40 * time.Millisecond)

	_, ok := c.Get("user:1")
	assert.False(t, ok)
}

func TestSnapshotCache_DisabledWithZeroTTL(t *testing.T) {
	c := NewSnapshotCache(0)
	c.Set("user:1", "Lan")

	_, ok := c.Get("user:1")
	assert.False(t, ok)
}
