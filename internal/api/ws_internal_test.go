package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastDropsStale(t *testing.T) {
	h := newHub()
	slow := h.subscribe("treasure")
	other := h.subscribe("mythology")

	// Nobody reads, broadcast must still return.
	for i := 0; i < wsSendBuffer*3; i++ {
		h.broadcast("treasure", []byte(fmt.Sprint(i)))
	}

	require.Len(t, slow.send, wsSendBuffer)
	var got []string
	for i := 0; i < wsSendBuffer; i++ {
		got = append(got, string(<-slow.send))
	}
	assert.Equal(t, []string{"8", "9", "10", "11"}, got, "only the newest snapshots should be kept")
	assert.Empty(t, other.send)

	h.unsubscribe("treasure", slow)
	assert.Zero(t, h.size("treasure"))
	assert.Equal(t, 1, h.size("mythology"))
}
