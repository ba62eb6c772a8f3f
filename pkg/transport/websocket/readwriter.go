package websocket

import "golang.org/x/net/websocket"

// ReadWriter implements PacketReadWriter, one packet per binary frame.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// Dial connects to a websocket bridge, e.g. ws://host:port/modules/osc.
func Dial(url string) (*ReadWriter, error) {
	conn, err := websocket.Dial(url, "", originOf(url))
	if err != nil {
		return nil, err
	}
	return New(conn), nil
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

func originOf(url string) string {
	switch {
	case len(url) > 6 && url[:6] == "wss://":
		return "https://" + url[6:]
	case len(url) > 5 && url[:5] == "ws://":
		return "http://" + url[5:]
	}
	return url
}
