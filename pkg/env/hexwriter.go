package env

import (
	"fmt"
	"io"
)

// HexWriter prints packets as hex, one per line.
type HexWriter struct {
	W io.Writer
}

// NewHexWriter creates a HexWriter.
func NewHexWriter(w io.Writer) *HexWriter {
	return &HexWriter{W: w}
}

// WritePacket implements PacketWriter.
func (h *HexWriter) WritePacket(pkt []byte) error {
	_, err := fmt.Fprintf(h.W, "% x\n", pkt)
	return err
}
