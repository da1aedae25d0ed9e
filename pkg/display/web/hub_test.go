package web

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gomeboy-core/pkg/log"
)

func TestHub_PushFrame(t *testing.T) {
	h := NewHub(log.NewNullLogger())
	go h.Run()
	defer h.Close()

	srv := httptest.NewServer(h)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() []byte {
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		return msg
	}

	require.Equal(t, []byte{ClientInfo, 1}, read())

	pixels := []uint32{0x000000, 0x123456}
	h.PushFrame(pixels)
	require.Equal(t, []byte{Frame, 0, 0, 0, 0, 0, 0x12, 0x34, 0x56}, read())

	h.PushFrame(pixels)
	require.Equal(t, []byte{FrameSkip}, read())

	pixels[0] = 0xFFFFFF
	h.PushFrame(pixels)
	require.Equal(t, []byte{Frame, 1, 0, 0xFF, 0xFF, 0xFF, 0x12, 0x34, 0x56}, read())

	pixels[0] = 0x000000
	h.PushFrame(pixels)
	require.Equal(t, []byte{FrameCache, 0, 0}, read())
}

func TestCache(t *testing.T) {
	c := newCache(2)
	require.Equal(t, -1, c.index(0))
	require.Equal(t, 0, c.add(10))
	require.Equal(t, 1, c.add(20))
	require.Equal(t, 0, c.add(30))
	require.Equal(t, -1, c.index(10))
	require.Equal(t, 1, c.index(20))
	require.Equal(t, 0, c.index(30))
}
