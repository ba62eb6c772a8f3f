package i2cproto

import "fmt"

// ParamID identifies a parameter. The high byte is the range of the owning
// module family and the low byte is the index within the family.
type ParamID uint16

// Parameter ranges.
const (
	RangeOscillator ParamID = 0x1000
	RangeFilter     ParamID = 0x1100
	RangeEnvelope   ParamID = 0x2000
	RangeLFO        ParamID = 0x3000
	RangeMixer      ParamID = 0x4000
	RangeEffects    ParamID = 0x5000

	// RangeMask selects the range bits of a ParamID.
	RangeMask ParamID = 0xff00
)

// MakeParamID composes a ParamID from a range and an index.
func MakeParamID(rng ParamID, index byte) ParamID {
	return rng&RangeMask | ParamID(index)
}

// Range gets the range bits.
func (id ParamID) Range() ParamID {
	return id & RangeMask
}

// Index gets the index within the range.
func (id ParamID) Index() byte {
	return byte(id)
}

// String implements fmt.Stringer.
func (id ParamID) String() string {
	return fmt.Sprintf("0x%04x", uint16(id))
}

// ParamValue is the raw 4-byte parameter value in wire order.
// How it is interpreted is decided only by the ParamID.
type ParamValue [4]byte

// U32Value creates a ParamValue holding an unsigned 32-bit value.
func U32Value(v uint32) (p ParamValue) {
	p[0], p[1], p[2], p[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	return
}

// S32Value creates a ParamValue holding a signed 32-bit value.
func S32Value(v int32) ParamValue {
	return U32Value(uint32(v))
}

// U16Value creates a ParamValue with two unsigned 16-bit lanes.
func U16Value(lane0, lane1 uint16) (p ParamValue) {
	p[0], p[1] = byte(lane0), byte(lane0>>8)
	p[2], p[3] = byte(lane1), byte(lane1>>8)
	return
}

// S16Value creates a ParamValue with two signed 16-bit lanes.
func S16Value(lane0, lane1 int16) ParamValue {
	return U16Value(uint16(lane0), uint16(lane1))
}

// U8Value creates a ParamValue with four 8-bit lanes.
func U8Value(l0, l1, l2, l3 uint8) ParamValue {
	return ParamValue{l0, l1, l2, l3}
}

// U32 interprets the value as unsigned 32-bit.
func (p ParamValue) U32() uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// S32 interprets the value as signed 32-bit.
func (p ParamValue) S32() int32 {
	return int32(p.U32())
}

// U16 gets 16-bit lane 0 or 1 as unsigned.
func (p ParamValue) U16(lane int) uint16 {
	n := (lane & 1) * 2
	return uint16(p[n]) | uint16(p[n+1])<<8
}

// S16 gets 16-bit lane 0 or 1 as signed.
func (p ParamValue) S16(lane int) int16 {
	return int16(p.U16(lane))
}

// U8 gets 8-bit lane 0 to 3.
func (p ParamValue) U8(lane int) uint8 {
	return p[lane&3]
}

// String implements fmt.Stringer.
func (p ParamValue) String() string {
	return fmt.Sprintf("0x%08x", p.U32())
}

// I2SConfig selects the TDM slots a module reads from and writes to.
// Bit n of a mask is slot n.
type I2SConfig struct {
	InputSlots  uint16
	OutputSlots uint16
}
