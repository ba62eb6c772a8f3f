package transport

import (
	"io"
	"sync"

	"github.com/golang/glog"

	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/metrics"
)

// Sender encodes messages and writes them to a PacketWriter.
type Sender struct {
	Writer PacketWriter
	// Name labels the sink in logs and metrics.
	Name string

	sendLock sync.Mutex
}

// NewSender creates a Sender.
func NewSender(name string, w PacketWriter) *Sender {
	return &Sender{Writer: w, Name: name}
}

// Send encodes and sends a message.
func (s *Sender) Send(msg msgs.Message) error {
	cmd := metrics.CommandLabel(msg.Command())
	pkt, err := msgs.Encode(msg)
	if err != nil {
		metrics.SendErrors.WithLabelValues(s.Name, cmd).Inc()
		glog.Warningf("%s: encode %v error: %v", s.Name, msg, err)
		return err
	}
	if err = s.SendRaw(pkt); err != nil {
		metrics.SendErrors.WithLabelValues(s.Name, cmd).Inc()
		glog.Warningf("%s: send %v error: %v", s.Name, msg, err)
		return err
	}
	metrics.PacketsSent.WithLabelValues(s.Name, cmd).Inc()
	glog.V(2).Infof("%s: SND %v % x", s.Name, msg, pkt)
	return nil
}

// SendRaw writes an already encoded packet.
func (s *Sender) SendRaw(pkt []byte) error {
	s.sendLock.Lock()
	defer s.sendLock.Unlock()
	return s.Writer.WritePacket(pkt)
}

// Close implements io.Closer.
func (s *Sender) Close() error {
	if closer, ok := s.Writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// WriterMux writes a packet to multiple writers.
type WriterMux struct {
	Writers []PacketWriter
}

// Add adds more writers.
func (m *WriterMux) Add(writers ...PacketWriter) *WriterMux {
	m.Writers = append(m.Writers, writers...)
	return m
}

// WritePacket implements PacketWriter.
func (m *WriterMux) WritePacket(pkt []byte) error {
	var errs AggregatedError
	for n, w := range m.Writers {
		errs.Add(n, w.WritePacket(pkt))
	}
	return errs.Aggregate()
}

// Close implements io.Closer.
func (m *WriterMux) Close() error {
	var errs AggregatedError
	for n, w := range m.Writers {
		if closer, ok := w.(io.Closer); ok {
			errs.Add(n, closer.Close())
		}
	}
	return errs.Aggregate()
}
