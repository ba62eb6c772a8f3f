package i2cproto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamID(t *testing.T) {
	id := MakeParamID(RangeFilter, 0x03)
	require.Equal(t, ParamID(0x1103), id)
	require.Equal(t, RangeFilter, id.Range())
	require.Equal(t, byte(0x03), id.Index())
	require.Equal(t, "0x1103", id.String())
	require.Equal(t, ParamID(0x3001), MakeParamID(0x30ff, 1))
}

func TestParamValueLanes(t *testing.T) {
	v := ParamValue{0x01, 0x02, 0x03, 0x84}
	require.Equal(t, uint32(0x84030201), v.U32())
	require.Equal(t, int32(-2080177663), v.S32())
	require.Equal(t, uint16(0x0201), v.U16(0))
	require.Equal(t, uint16(0x8403), v.U16(1))
	require.Equal(t, int16(-31741), v.S16(1))
	for i := 0; i < 4; i++ {
		require.Equal(t, v[i], v.U8(i))
	}
	require.Equal(t, "0x84030201", v.String())
}

func TestParamValueConstructors(t *testing.T) {
	require.Equal(t, ParamValue{0xff, 0xff, 0, 0}, U32Value(0xffff))
	require.Equal(t, ParamValue{0xff, 0xff, 0xff, 0xff}, S32Value(-1))
	require.Equal(t, ParamValue{0x34, 0x12, 0x78, 0x56}, U16Value(0x1234, 0x5678))
	v := S16Value(-8192, 8191)
	require.Equal(t, int16(-8192), v.S16(0))
	require.Equal(t, int16(8191), v.S16(1))
	require.Equal(t, ParamValue{1, 2, 3, 4}, U8Value(1, 2, 3, 4))
}

func TestRegisterRanges(t *testing.T) {
	require.True(t, IsReadRegister(RegStatus))
	require.True(t, IsStatusRegister(RegGetParam))
	require.False(t, IsModuleSpecific(RegStatus))
	require.True(t, IsModuleSpecific(RegModuleReadBase))
	require.False(t, IsStatusRegister(RegModuleReadBase))

	for _, cmd := range []byte{CmdReset, CmdI2SConfig, CmdSetParam, CmdSaveSettings, CmdLoadSettings} {
		require.True(t, IsWriteCommand(cmd))
		require.False(t, IsModuleSpecific(cmd))
	}
	require.True(t, IsModuleSpecific(CmdModuleWriteBase))
	require.True(t, IsModuleSpecific(0xff))
}

func TestModuleType(t *testing.T) {
	require.Equal(t, "lfo", ModuleLFO.String())
	require.Equal(t, "unknown(0x7f)", ModuleType(0x7f).String())
	require.Equal(t, "unknown(0x0a)", ModuleType(0x0a).String())
	typ, ok := ParseModuleType("Filter")
	require.True(t, ok)
	require.Equal(t, ModuleFilter, typ)
	_, ok = ParseModuleType("sequencer")
	require.False(t, ok)
}

func TestStatus(t *testing.T) {
	s := StatusInitialized | StatusAudioActive
	require.True(t, s.Has(StatusInitialized))
	require.False(t, s.Has(StatusBusy))
	require.False(t, s.Has(StatusInitialized|StatusBusy))
	require.Equal(t, "initialized|audio-active", s.String())
	require.Equal(t, "none", Status(0).String())
}
