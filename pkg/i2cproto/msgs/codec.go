package msgs

import (
	"errors"
	"fmt"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

var (
	// ErrEmptyMessage indicates there's no command byte.
	ErrEmptyMessage = errors.New("empty message")
	// ErrBufferTooSmall indicates the buffer can't hold the encoded message.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// UnknownCommandError is returned when parsing an unknown command byte.
type UnknownCommandError struct {
	Cmd byte
}

// Error implements error.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command 0x%02x", e.Cmd)
}

// SizeError indicates the payload doesn't match the size of the command.
type SizeError struct {
	Cmd  byte
	Want int
	Got  int
}

// Error implements error.
func (e *SizeError) Error() string {
	return fmt.Sprintf("command 0x%02x: payload size %d, expect %d", e.Cmd, e.Got, e.Want)
}

// newMessages maps known commands to message factories.
var newMessages = map[byte]func() Message{
	proto.CmdReset:        func() Message { return &Reset{} },
	proto.CmdI2SConfig:    func() Message { return &I2SConfig{} },
	proto.CmdSetParam:     func() Message { return &SetParam{} },
	proto.CmdSaveSettings: func() Message { return &SaveSettings{} },
	proto.CmdLoadSettings: func() Message { return &LoadSettings{} },
}

// PayloadSize gets the payload size of a known command.
func PayloadSize(cmd byte) (int, bool) {
	if fn, ok := newMessages[cmd]; ok {
		return fn().PayloadSize(), true
	}
	return 0, false
}

// Encode packs a message into a newly allocated buffer.
func Encode(msg Message) ([]byte, error) {
	buf := make([]byte, proto.CommandMsgSize+msg.PayloadSize())
	n, err := msg.MarshalTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Parse decodes a complete message: the command byte followed by payload.
func Parse(raw []byte) (Message, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyMessage
	}
	cmd, payload := raw[0], raw[1:]
	fn, ok := newMessages[cmd]
	if !ok {
		return nil, &UnknownCommandError{Cmd: cmd}
	}
	msg := fn()
	if size := msg.PayloadSize(); len(payload) != size {
		return nil, &SizeError{Cmd: cmd, Want: size, Got: len(payload)}
	}
	switch m := msg.(type) {
	case *SetParam:
		proto.UnpackSetParamPayload(payload, &m.ID, &m.Value)
	case *I2SConfig:
		proto.UnpackI2SConfigPayload(payload, &m.I2SConfig)
	}
	return msg, nil
}
