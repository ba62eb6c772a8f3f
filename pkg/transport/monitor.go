package transport

import (
	"context"
	"io"

	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/metrics"
)

// PacketHandler is called for every packet received by Monitor.
// Either msg or err is set.
type PacketHandler interface {
	HandlePacket(ctx context.Context, raw []byte, msg msgs.Message, err error)
}

// HandlePacketFunc is func form of PacketHandler.
type HandlePacketFunc func(ctx context.Context, raw []byte, msg msgs.Message, err error)

// HandlePacket implements PacketHandler.
func (f HandlePacketFunc) HandlePacket(ctx context.Context, raw []byte, msg msgs.Message, err error) {
	f(ctx, raw, msg, err)
}

// Monitor reads packets and decodes them into messages.
type Monitor struct {
	Reader  PacketReader
	Handler PacketHandler
}

// Run reads until the reader fails or ctx is done.
// io.EOF from the reader stops the loop without error.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		pkt, err := m.Reader.ReadPacket()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		msg, err := msgs.Parse(pkt)
		if err != nil {
			metrics.ParseErrors.Inc()
		} else {
			metrics.PacketsParsed.WithLabelValues(metrics.CommandLabel(msg.Command())).Inc()
		}
		if h := m.Handler; h != nil {
			h.HandlePacket(ctx, pkt, msg, err)
		}
	}
}
