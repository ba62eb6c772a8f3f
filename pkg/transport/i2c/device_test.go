package i2c

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/transport"
)

type tx struct {
	addr uint16
	w    []byte
	r    int
}

type fakeBus struct {
	txs  []tx
	regs map[byte]byte
	err  error
}

var _ drivers.I2C = (*fakeBus)(nil)

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.txs = append(b.txs, tx{addr: addr, w: append([]byte(nil), w...), r: len(r)})
	if len(w) == 1 && len(r) > 0 {
		r[0] = b.regs[w[0]]
	}
	return nil
}

func TestDeviceSend(t *testing.T) {
	bus := &fakeBus{}
	dev := New(bus, 0x21)
	s := transport.NewSender("i2c", dev)
	require.NoError(t, s.Send(&msgs.SetParam{ID: 0x1001, Value: proto.U32Value(0xffff)}))
	require.NoError(t, s.Send(&msgs.SaveSettings{}))
	require.Equal(t, []tx{
		{addr: 0x21, w: []byte{0x82, 0x01, 0x10, 0xff, 0xff, 0, 0}},
		{addr: 0x21, w: []byte{0x83}},
	}, bus.txs)
}

func TestDeviceRegisters(t *testing.T) {
	bus := &fakeBus{regs: map[byte]byte{
		proto.RegModuleType:      byte(proto.ModuleFilter),
		proto.RegFirmwareVersion: 3,
		proto.RegStatus:          byte(proto.StatusInitialized | proto.StatusBusy),
	}}
	dev := New(bus, 0)
	require.Equal(t, DefaultAddress, dev.Addr)

	typ, err := dev.ModuleType()
	require.NoError(t, err)
	require.Equal(t, proto.ModuleFilter, typ)

	ver, err := dev.FirmwareVersion()
	require.NoError(t, err)
	require.Equal(t, byte(3), ver)

	status, err := dev.Status()
	require.NoError(t, err)
	require.True(t, status.Has(proto.StatusBusy))
	require.False(t, status.Has(proto.StatusError))

	require.Equal(t, tx{addr: DefaultAddress, w: []byte{proto.RegStatus}, r: 1}, bus.txs[2])
}

func TestDeviceErrors(t *testing.T) {
	dev := &Device{}
	require.Equal(t, ErrNoBus, dev.WritePacket([]byte{0x80}))
	_, err := dev.Status()
	require.Equal(t, ErrNoBus, err)

	errNack := errors.New("nack")
	dev = New(&fakeBus{err: errNack}, 0x22)
	require.Equal(t, errNack, dev.WritePacket([]byte{0x80}))
	_, err = dev.ModuleType()
	require.Equal(t, errNack, err)
}

type lockedBus struct {
	lock sync.Mutex
	regs map[byte]byte
}

func (b *lockedBus) Tx(addr uint16, w, r []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()
	if len(w) == 1 && len(r) > 0 {
		r[0] = b.regs[w[0]]
	}
	return nil
}

func TestDeviceConcurrentReads(t *testing.T) {
	dev := New(&lockedBus{regs: map[byte]byte{
		proto.RegModuleType: byte(proto.ModuleMixer),
		proto.RegStatus:     byte(proto.StatusAudioActive),
	}}, 0x30)

	const rounds = 200
	errCh := make(chan error, 2)
	go func() {
		for n := 0; n < rounds; n++ {
			if typ, err := dev.ModuleType(); err != nil || typ != proto.ModuleMixer {
				errCh <- fmt.Errorf("module type %v: %v", typ, err)
				return
			}
		}
		errCh <- nil
	}()
	go func() {
		for n := 0; n < rounds; n++ {
			if status, err := dev.Status(); err != nil || status != proto.StatusAudioActive {
				errCh <- fmt.Errorf("status %v: %v", status, err)
				return
			}
		}
		errCh <- nil
	}()
	require.NoError(t, <-errCh)
	require.NoError(t, <-errCh)
}
