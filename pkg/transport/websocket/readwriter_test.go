package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/transport"
)

func TestReadWriter(t *testing.T) {
	recvCh := make(chan []byte, 1)
	srv := httptest.NewServer(websocket.Handler(func(conn *websocket.Conn) {
		rw := New(conn)
		pkt, err := rw.ReadPacket()
		if err != nil {
			close(recvCh)
			return
		}
		recvCh <- pkt
		rw.WritePacket([]byte{0x84})
	}))
	defer srv.Close()

	rw, err := Dial("ws://" + strings.TrimPrefix(srv.URL, "http://"))
	require.NoError(t, err)
	defer rw.Close()

	require.NoError(t, transport.NewSender("ws", rw).Send(&msgs.Reset{}))
	require.Equal(t, []byte{0x80}, <-recvCh)

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0x84}, pkt)
}

func TestOriginOf(t *testing.T) {
	require.Equal(t, "http://host:80/x", originOf("ws://host:80/x"))
	require.Equal(t, "https://host/x", originOf("wss://host/x"))
	require.Equal(t, "tcp://a", originOf("tcp://a"))
}
