package mqtt

import (
	"context"
	"io"
	"sync"

	"github.com/robotalks/synth.go/pkg/transport"
)

// Topic suffixes of a module.
const (
	TopicCmd   = "cmd"
	TopicEvent = "evt"
)

// ReadWriter implements PacketReadWriter on a Queue.
// Packets are written to PubTopic and read from SubTopic.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	packetCh chan []byte
	done     chan struct{}
	stopOnce sync.Once
}

// NewPacketReadWriter creates the ReadWriter.
func NewPacketReadWriter(q *Queue) *ReadWriter {
	return &ReadWriter{
		Queue:    q,
		packetCh: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

// WithTopics specifies the topics.
func (p *ReadWriter) WithTopics(sub, pub string) *ReadWriter {
	p.SubTopic, p.PubTopic = sub, pub
	return p
}

// ForController sets topics for the controller talking to a module:
// SubTopic = type/id/evt
// PubTopic = type/id/cmd
func (p *ReadWriter) ForController(ref transport.ModuleRef) *ReadWriter {
	prefix := ref.Name() + "/"
	return p.WithTopics(prefix+TopicEvent, prefix+TopicCmd)
}

// ForMonitor subscribes the commands sent to all modules and never publishes.
func (p *ReadWriter) ForMonitor() *ReadWriter {
	return p.WithTopics("+/+/"+TopicCmd, "")
}

// ReadPacket implements PacketReader.
// It returns io.EOF once the ReadWriter is stopped.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case <-p.done:
		return nil, io.EOF
	default:
	}
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.done:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if p.PubTopic == "" {
		return io.ErrClosedPipe
	}
	token := p.Queue.Pub(p.PubTopic, pkt)
	token.Wait()
	return token.Error()
}

// Run subscribes SubTopic and feeds ReadPacket until ctx is done.
// packetCh is never closed: the client may still deliver messages
// after unsubscribing, those are dropped once stopped.
func (p *ReadWriter) Run(ctx context.Context) error {
	sub := p.Queue.Sub(p.SubTopic, Handler(p.handleMsg))
	<-ctx.Done()
	p.stop()
	sub.Close()
	return ctx.Err()
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	p.stop()
	return p.Queue.Close()
}

func (p *ReadWriter) stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.done:
	}
}
