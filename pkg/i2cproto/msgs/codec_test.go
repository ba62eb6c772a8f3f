package msgs

import (
	"testing"

	"github.com/stretchr/testify/require"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		msg    Message
		expect []byte
	}{
		{"set param", &SetParam{ID: 0x1001, Value: proto.U32Value(0xffff)}, []byte{0x82, 0x01, 0x10, 0xff, 0xff, 0, 0}},
		{"i2s config", &I2SConfig{proto.I2SConfig{InputSlots: 3, OutputSlots: 8}}, []byte{0x81, 3, 0, 8, 0}},
		{"reset", &Reset{}, []byte{0x80}},
		{"save", &SaveSettings{}, []byte{0x83}},
		{"load", &LoadSettings{}, []byte{0x84}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := Encode(tc.msg)
			require.NoError(t, err)
			require.Equal(t, tc.expect, data)

			size, ok := PayloadSize(tc.msg.Command())
			require.True(t, ok)
			require.Equal(t, len(tc.expect)-1, size)

			msg, err := Parse(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg, msg)
		})
	}
}

func TestMarshalToShortBuffer(t *testing.T) {
	for _, msg := range []Message{&SetParam{}, &I2SConfig{}, &Reset{}} {
		buf := make([]byte, msg.PayloadSize())
		n, err := msg.MarshalTo(buf)
		require.Equal(t, 0, n)
		require.Equal(t, ErrBufferTooSmall, err)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	require.Equal(t, ErrEmptyMessage, err)

	_, err = Parse([]byte{0x7f, 1})
	require.Equal(t, &UnknownCommandError{Cmd: 0x7f}, err)

	_, err = Parse([]byte{proto.CmdSetParam, 1, 2, 3, 4, 5})
	require.Equal(t, &SizeError{Cmd: proto.CmdSetParam, Want: 6, Got: 5}, err)
	require.EqualError(t, err, "command 0x82: payload size 5, expect 6")

	_, err = Parse([]byte{proto.CmdI2SConfig, 1, 2, 3, 4, 5})
	require.Equal(t, &SizeError{Cmd: proto.CmdI2SConfig, Want: 4, Got: 5}, err)

	_, err = Parse([]byte{proto.CmdReset, 0})
	require.Equal(t, &SizeError{Cmd: proto.CmdReset, Want: 0, Got: 1}, err)
}

func TestPayloadSizeUnknown(t *testing.T) {
	_, ok := PayloadSize(proto.RegStatus)
	require.False(t, ok)
	_, ok = PayloadSize(proto.CmdModuleWriteBase)
	require.False(t, ok)
}

func TestString(t *testing.T) {
	require.Equal(t, "SetParam{id=0x1001 value=0x0000ffff}",
		(&SetParam{ID: 0x1001, Value: proto.U32Value(0xffff)}).String())
	require.Equal(t, "I2SConfig{in=0x0003 out=0x0008}",
		(&I2SConfig{proto.I2SConfig{InputSlots: 3, OutputSlots: 8}}).String())
	require.Equal(t, "Reset", (&Reset{}).String())
}
