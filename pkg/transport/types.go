// Package transport carries encoded module messages over packet oriented
// media (I2C, MQTT, websocket, length-prefixed streams).
package transport

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// WritePacketFunc is func form of PacketWriter.
type WritePacketFunc func([]byte) error

// WritePacket implements PacketWriter.
func (f WritePacketFunc) WritePacket(pkt []byte) error {
	return f(pkt)
}

// ModuleRef names a module reachable through a bridge (e.g. MQTT).
type ModuleRef struct {
	// Type is the module type name, e.g. "oscillator".
	Type string
	// ID is unique ID of the module or of the controller hosting it.
	ID string
}

// Name retrieves the name from ref.
func (r ModuleRef) Name() string {
	return r.Type + "/" + r.ID
}

// IsValid indicates ModuleRef is valid.
func (r ModuleRef) IsValid() bool {
	return r.Type != "" && r.ID != ""
}
