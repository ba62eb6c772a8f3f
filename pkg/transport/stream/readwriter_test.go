package stream

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePacket(t *testing.T) {
	var buf bytes.Buffer
	rw := New(&buf)
	require.NoError(t, rw.WritePacket([]byte{0x81, 3, 0, 8, 0}))
	require.NoError(t, rw.WritePacket([]byte{0x80}))
	require.Equal(t, []byte{
		5, 0, 0, 0, 0x81, 3, 0, 8, 0,
		1, 0, 0, 0, 0x80,
	}, buf.Bytes())

	pkt, err := rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 3, 0, 8, 0}, pkt)
	pkt, err = rw.ReadPacket()
	require.NoError(t, err)
	require.Equal(t, []byte{0x80}, pkt)
	_, err = rw.ReadPacket()
	require.Equal(t, io.EOF, err)
}

func TestReadPacketErrors(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
	}{
		{"short prefix", []byte{1, 0}},
		{"truncated", []byte{3, 0, 0, 0, 0x80}},
		{"too large", []byte{1, 1, 0, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(bytes.NewBuffer(tc.in)).ReadPacket()
			require.Error(t, err)
			require.NotEqual(t, io.EOF, err)
		})
	}
}
