// Package i2c sends module messages over an I2C bus.
package i2c

import (
	"errors"

	"tinygo.org/x/drivers"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// DefaultAddress is the fallback 7-bit address of a module.
const DefaultAddress uint16 = 0x40

// ErrNoBus indicates the Device has no bus attached.
var ErrNoBus = errors.New("no i2c bus")

// Device is a module on an I2C bus.
// It implements transport.PacketWriter so messages can be sent with a
// transport.Sender, and reads the common status registers.
// Device keeps no state besides the address; serializing transactions
// on a shared bus is up to the bus implementation.
type Device struct {
	Bus  drivers.I2C
	Addr uint16
}

// New creates a Device.
func New(bus drivers.I2C, addr uint16) *Device {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &Device{Bus: bus, Addr: addr}
}

// WritePacket implements transport.PacketWriter.
// A packet is written as one bus transaction.
func (d *Device) WritePacket(pkt []byte) error {
	if d.Bus == nil {
		return ErrNoBus
	}
	return d.Bus.Tx(d.Addr, pkt, nil)
}

// ReadRegister selects reg and reads len(buf) bytes.
func (d *Device) ReadRegister(reg byte, buf []byte) error {
	if d.Bus == nil {
		return ErrNoBus
	}
	return d.Bus.Tx(d.Addr, []byte{reg}, buf)
}

func (d *Device) readByte(reg byte) (byte, error) {
	var r [1]byte
	if err := d.ReadRegister(reg, r[:]); err != nil {
		return 0, err
	}
	return r[0], nil
}

// ModuleType reads RegModuleType.
func (d *Device) ModuleType() (proto.ModuleType, error) {
	b, err := d.readByte(proto.RegModuleType)
	return proto.ModuleType(b), err
}

// FirmwareVersion reads RegFirmwareVersion.
func (d *Device) FirmwareVersion() (byte, error) {
	return d.readByte(proto.RegFirmwareVersion)
}

// Status reads RegStatus.
func (d *Device) Status() (proto.Status, error) {
	b, err := d.readByte(proto.RegStatus)
	return proto.Status(b), err
}
