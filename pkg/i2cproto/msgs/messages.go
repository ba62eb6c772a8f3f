// Package msgs provides typed messages on top of the i2cproto codec.
package msgs

import (
	"fmt"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// Message is a command sent from the controller to a module.
type Message interface {
	// Command gets the command byte.
	Command() byte
	// PayloadSize gets the fixed payload size following the command byte.
	PayloadSize() int
	// MarshalTo packs the complete message into buf.
	MarshalTo(buf []byte) (int, error)
}

// SetParam sets a parameter on a module.
type SetParam struct {
	ID    proto.ParamID
	Value proto.ParamValue
}

// Command implements Message.
func (m *SetParam) Command() byte { return proto.CmdSetParam }

// PayloadSize implements Message.
func (m *SetParam) PayloadSize() int { return proto.SetParamPayloadSize }

// MarshalTo implements Message.
func (m *SetParam) MarshalTo(buf []byte) (int, error) {
	if n := proto.PackSetParamMsg(buf, m.ID, m.Value); n > 0 {
		return n, nil
	}
	return 0, ErrBufferTooSmall
}

// String implements fmt.Stringer.
func (m *SetParam) String() string {
	return fmt.Sprintf("SetParam{id=%v value=%v}", m.ID, m.Value)
}

// I2SConfig assigns TDM slots to a module.
type I2SConfig struct {
	proto.I2SConfig
}

// Command implements Message.
func (m *I2SConfig) Command() byte { return proto.CmdI2SConfig }

// PayloadSize implements Message.
func (m *I2SConfig) PayloadSize() int { return proto.I2SConfigPayloadSize }

// MarshalTo implements Message.
func (m *I2SConfig) MarshalTo(buf []byte) (int, error) {
	if n := proto.PackI2SConfigMsg(buf, &m.I2SConfig); n > 0 {
		return n, nil
	}
	return 0, ErrBufferTooSmall
}

// String implements fmt.Stringer.
func (m *I2SConfig) String() string {
	return fmt.Sprintf("I2SConfig{in=0x%04x out=0x%04x}", m.InputSlots, m.OutputSlots)
}

// simple is a command without payload.
type simple struct{}

func (simple) PayloadSize() int { return 0 }

func marshalSimple(buf []byte, cmd byte) (int, error) {
	if n := proto.PackCommandMsg(buf, cmd); n > 0 {
		return n, nil
	}
	return 0, ErrBufferTooSmall
}

// Reset resets a module.
type Reset struct{ simple }

// Command implements Message.
func (m *Reset) Command() byte { return proto.CmdReset }

// MarshalTo implements Message.
func (m *Reset) MarshalTo(buf []byte) (int, error) { return marshalSimple(buf, proto.CmdReset) }

// String implements fmt.Stringer.
func (m *Reset) String() string { return "Reset" }

// SaveSettings requests a module to persist its settings.
type SaveSettings struct{ simple }

// Command implements Message.
func (m *SaveSettings) Command() byte { return proto.CmdSaveSettings }

// MarshalTo implements Message.
func (m *SaveSettings) MarshalTo(buf []byte) (int, error) {
	return marshalSimple(buf, proto.CmdSaveSettings)
}

// String implements fmt.Stringer.
func (m *SaveSettings) String() string { return "SaveSettings" }

// LoadSettings requests a module to reload persisted settings.
type LoadSettings struct{ simple }

// Command implements Message.
func (m *LoadSettings) Command() byte { return proto.CmdLoadSettings }

// MarshalTo implements Message.
func (m *LoadSettings) MarshalTo(buf []byte) (int, error) {
	return marshalSimple(buf, proto.CmdLoadSettings)
}

// String implements fmt.Stringer.
func (m *LoadSettings) String() string { return "LoadSettings" }
