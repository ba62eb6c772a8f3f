package params

import (
	"math"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// Oscillator parameters.
const (
	OscWaveform   = proto.RangeOscillator | 0x00
	OscPitchMIDI  = proto.RangeOscillator | 0x01
	OscPitchHz    = proto.RangeOscillator | 0x02
	OscLevel      = proto.RangeOscillator | 0x03
	OscPulseWidth = proto.RangeOscillator | 0x04
	OscDetune     = proto.RangeOscillator | 0x05
)

// Filter parameters.
const (
	FilterType      = proto.RangeFilter | 0x00
	FilterCutoff    = proto.RangeFilter | 0x01
	FilterResonance = proto.RangeFilter | 0x02
	FilterGain      = proto.RangeFilter | 0x03
)

// Envelope parameters, times in milliseconds.
const (
	EnvAttack  = proto.RangeEnvelope | 0x00
	EnvDecay   = proto.RangeEnvelope | 0x01
	EnvSustain = proto.RangeEnvelope | 0x02
	EnvRelease = proto.RangeEnvelope | 0x03
)

// LFO parameters.
const (
	LFOWaveform = proto.RangeLFO | 0x00
	LFORate     = proto.RangeLFO | 0x01
	LFODepth    = proto.RangeLFO | 0x02
)

// Mixer parameters.
const (
	MixerLevel1 = proto.RangeMixer | 0x00
	MixerLevel2 = proto.RangeMixer | 0x01
	MixerLevel3 = proto.RangeMixer | 0x02
	MixerLevel4 = proto.RangeMixer | 0x03
)

// Effects parameters.
const (
	FxType = proto.RangeEffects | 0x00
	FxMix  = proto.RangeEffects | 0x01
)

var waveforms = []string{"sine", "triangle", "saw", "square", "noise"}

// Default is the catalog of the parameters of the standard modules.
var Default = NewCatalog().MustRegister(
	Def{ID: OscWaveform, Name: "osc.waveform", Kind: KindEnum, Enum: waveforms},
	Def{ID: OscPitchMIDI, Name: "osc.pitch_midi", Kind: KindU8, Max: 127, Help: "MIDI note number"},
	Def{ID: OscPitchHz, Name: "osc.pitch_hz", Kind: KindU32, Min: 1, Max: 24000, Help: "fixed pitch in Hz"},
	Def{ID: OscLevel, Name: "osc.level", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: OscPulseWidth, Name: "osc.pulse_width", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: OscDetune, Name: "osc.detune", Kind: KindS16, Min: -8192, Max: 8191, Help: "cents"},

	Def{ID: FilterType, Name: "filter.type", Kind: KindEnum, Enum: []string{"lowpass", "highpass", "bandpass", "notch"}},
	Def{ID: FilterCutoff, Name: "filter.cutoff", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: FilterResonance, Name: "filter.resonance", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: FilterGain, Name: "filter.gain", Kind: KindS16, Min: -8192, Max: 8191, Help: "dB"},

	Def{ID: EnvAttack, Name: "env.attack", Kind: KindU32, Max: 60000, Help: "ms"},
	Def{ID: EnvDecay, Name: "env.decay", Kind: KindU32, Max: 60000, Help: "ms"},
	Def{ID: EnvSustain, Name: "env.sustain", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: EnvRelease, Name: "env.release", Kind: KindU32, Max: 60000, Help: "ms"},

	Def{ID: LFOWaveform, Name: "lfo.waveform", Kind: KindEnum, Enum: waveforms},
	Def{ID: LFORate, Name: "lfo.rate", Kind: KindU32, Max: 100000, Help: "mHz"},
	Def{ID: LFODepth, Name: "lfo.depth", Kind: KindU16, Max: math.MaxUint16},

	Def{ID: MixerLevel1, Name: "mixer.level_1", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: MixerLevel2, Name: "mixer.level_2", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: MixerLevel3, Name: "mixer.level_3", Kind: KindU16, Max: math.MaxUint16},
	Def{ID: MixerLevel4, Name: "mixer.level_4", Kind: KindU16, Max: math.MaxUint16},

	Def{ID: FxType, Name: "fx.type", Kind: KindEnum, Enum: []string{"bypass", "delay", "reverb", "chorus"}},
	Def{ID: FxMix, Name: "fx.mix", Kind: KindU16, Max: math.MaxUint16},
)
