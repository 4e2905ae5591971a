package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*TTLStore[string], *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	s := NewTTLStore[string](ttl)
	s.now = clock.now
	return s, clock
}

func TestSetGetExpire(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Set("a", "alpha")

	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", v)

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok = s.Get("a")
	assert.False(t, ok)
}

func TestTouchExtends(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Set("a", "alpha")

	clock.t = clock.t.Add(50 * time.Second)
	_, ok := s.Touch("a")
	assert.True(t, ok)

	clock.t = clock.t.Add(50 * time.Second)
	v, ok := s.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", v)

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok = s.Touch("a")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestDeleteAndSweep(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Set("a", "alpha")
	s.Set("b", "beta")

	v, ok := s.Delete("a")
	assert.True(t, ok)
	assert.Equal(t, "alpha", v)
	_, ok = s.Delete("a")
	assert.False(t, ok)

	s.Set("c", "gamma")
	clock.t = clock.t.Add(30 * time.Second)
	s.Touch("c")
	clock.t = clock.t.Add(45 * time.Second)

	assert.Equal(t, []string{"beta"}, s.Sweep())
	assert.Equal(t, 1, s.Len())
}
