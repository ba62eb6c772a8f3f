package params

import (
	"testing"

	"github.com/stretchr/testify/require"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

func TestParseValue(t *testing.T) {
	testCases := []struct {
		param  proto.ParamID
		in     string
		expect proto.ParamValue
		err    bool
	}{
		{OscPitchMIDI, "60", proto.U8Value(60, 0, 0, 0), false},
		{OscPitchMIDI, "128", proto.ParamValue{}, true},
		{OscPitchHz, "0x1b8", proto.U32Value(440), false},
		{OscPitchHz, "0", proto.ParamValue{}, true},
		{OscDetune, "-8192", proto.S16Value(-8192, 0), false},
		{OscDetune, "8192", proto.ParamValue{}, true},
		{OscLevel, "65535", proto.U16Value(0xffff, 0), false},
		{OscLevel, "-1", proto.ParamValue{}, true},
		{OscWaveform, "Saw", proto.U32Value(2), false},
		{OscWaveform, "4", proto.U32Value(4), false},
		{OscWaveform, "5", proto.ParamValue{}, true},
		{OscWaveform, "pulse", proto.ParamValue{}, true},
		{FilterCutoff, "abc", proto.ParamValue{}, true},
	}

	for _, tc := range testCases {
		def, ok := Default.Lookup(tc.param)
		require.True(t, ok)
		t.Run(def.Name+"="+tc.in, func(t *testing.T) {
			v, err := def.ParseValue(tc.in)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, v)
			require.NoError(t, def.Validate(v))
		})
	}
}

func TestValidate(t *testing.T) {
	def, _ := Default.Lookup(OscDetune)
	require.NoError(t, def.Validate(proto.S16Value(-100, 0)))
	require.Error(t, def.Validate(proto.S16Value(-100, 1)))
	err := def.Validate(proto.S16Value(-9000, 0))
	require.Equal(t, &RangeError{Name: "osc.detune", Value: -9000, Min: -8192, Max: 8191}, err)
	require.EqualError(t, err, "osc.detune: value -9000 out of range [-8192, 8191]")

	def, _ = Default.Lookup(FilterType)
	require.NoError(t, def.Validate(proto.U32Value(3)))
	require.Error(t, def.Validate(proto.U32Value(4)))
}

func TestFormat(t *testing.T) {
	def, _ := Default.Lookup(LFOWaveform)
	require.Equal(t, "square", def.Format(proto.U32Value(3)))
	require.Equal(t, "9", def.Format(proto.U32Value(9)))
	def, _ = Default.Lookup(FilterGain)
	require.Equal(t, "-12", def.Format(proto.S16Value(-12, 0)))
}

func TestKindString(t *testing.T) {
	require.Equal(t, "s16", KindS16.String())
	require.Equal(t, "kind(42)", Kind(42).String())
}

func TestBetween(t *testing.T) {
	require.True(t, Between(5, 1, 5))
	require.False(t, Between(0, 1, 5))
	require.True(t, Between("b", "a", "c"))
}
