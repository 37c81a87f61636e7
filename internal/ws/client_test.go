package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientEnqueueDropsWhenFull(t *testing.T) {
	c := &Client{ID: "c1", Send: make(chan []byte, 1)}

	assert.True(t, c.Enqueue([]byte("one")))
	assert.False(t, c.Enqueue([]byte("two")), "full buffer drops instead of blocking")

	got := <-c.Send
	assert.Equal(t, []byte("one"), got)
}
