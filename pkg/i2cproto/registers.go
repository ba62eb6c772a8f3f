package i2cproto

import (
	"fmt"
	"strings"
)

// Read-only registers.
const (
	RegModuleType      byte = 0x00
	RegFirmwareVersion byte = 0x01
	RegStatus          byte = 0x02
	RegGetParam        byte = 0x03

	// RegModuleReadBase is the first module-specific read register.
	RegModuleReadBase byte = 0x20
)

// Write commands.
const (
	CmdReset        byte = 0x80
	CmdI2SConfig    byte = 0x81
	CmdSetParam     byte = 0x82
	CmdSaveSettings byte = 0x83
	CmdLoadSettings byte = 0x84

	// CmdModuleWriteBase is the first module-specific write command.
	CmdModuleWriteBase byte = 0xA0
)

const (
	regStatusEnd byte = 0x20
	cmdMask      byte = 0x80
)

// IsReadRegister reports whether b selects a register to read.
func IsReadRegister(b byte) bool {
	return b&cmdMask == 0
}

// IsWriteCommand reports whether b selects a write command/register.
func IsWriteCommand(b byte) bool {
	return b&cmdMask != 0
}

// IsModuleSpecific reports whether b is in one of the module-specific ranges.
func IsModuleSpecific(b byte) bool {
	if IsWriteCommand(b) {
		return b >= CmdModuleWriteBase
	}
	return b >= RegModuleReadBase
}

// IsStatusRegister reports whether b is a common status register.
func IsStatusRegister(b byte) bool {
	return b < regStatusEnd
}

// ModuleType identifies the kind of a module, read from RegModuleType.
type ModuleType byte

// Module types.
const (
	ModuleCentral    ModuleType = 0x00
	ModuleOscillator ModuleType = 0x01
	ModuleFilter     ModuleType = 0x02
	ModuleEnvelope   ModuleType = 0x03
	ModuleLFO        ModuleType = 0x04
	ModuleMixer      ModuleType = 0x05
	ModuleEffects    ModuleType = 0x06
)

var moduleTypeNames = map[ModuleType]string{
	ModuleCentral:    "central",
	ModuleOscillator: "oscillator",
	ModuleFilter:     "filter",
	ModuleEnvelope:   "envelope",
	ModuleLFO:        "lfo",
	ModuleMixer:      "mixer",
	ModuleEffects:    "effects",
}

// String implements fmt.Stringer.
func (t ModuleType) String() string {
	if name, ok := moduleTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(t))
}

// ParseModuleType finds a ModuleType by its name.
func ParseModuleType(name string) (ModuleType, bool) {
	name = strings.ToLower(name)
	for t, n := range moduleTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// Status is the content of RegStatus.
type Status byte

// Status flags.
const (
	StatusInitialized  Status = 1 << 0
	StatusError        Status = 1 << 1
	StatusBusy         Status = 1 << 2
	StatusAudioActive  Status = 1 << 3
	StatusParamChanged Status = 1 << 4
)

var statusNames = []struct {
	flag Status
	name string
}{
	{StatusInitialized, "initialized"},
	{StatusError, "error"},
	{StatusBusy, "busy"},
	{StatusAudioActive, "audio-active"},
	{StatusParamChanged, "param-changed"},
}

// Has checks if all bits in flag are set.
func (s Status) Has(flag Status) bool {
	return s&flag == flag
}

// String implements fmt.Stringer.
func (s Status) String() string {
	var names []string
	for _, n := range statusNames {
		if s.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}
