package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleStore(t *testing.T) {
	var s handleStore

	a := s.create()
	b := s.create()
	assert.True(t, a.Valid())
	assert.NotEqual(t, a, b)
	assert.True(t, s.isAlive(a))

	assert.True(t, s.destroy(a))
	assert.False(t, s.destroy(a), "destroying twice is a no-op")
	assert.False(t, s.isAlive(a))

	c := s.create()
	assert.Equal(t, a.id(), c.id(), "freed ids are reused")
	assert.NotEqual(t, a, c)
	assert.False(t, s.isAlive(a), "a stale handle never resolves to the new occupant")
	assert.True(t, s.isAlive(c))
	assert.True(t, s.isAlive(b))

	assert.False(t, s.isAlive(Handle(0)))
	assert.False(t, Handle(0).Valid())
	assert.False(t, s.isAlive(makeHandle(99, 0)))
}
