package params

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// Kind tells how the 4 bytes of a ParamValue are interpreted.
type Kind int

// Value kinds.
const (
	KindU32 Kind = iota
	KindS32
	KindU16 // lane 0
	KindS16 // lane 0
	KindU8  // lane 0
	KindEnum
)

var kindNames = [...]string{"u32", "s32", "u16", "s16", "u8", "enum"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Def defines a parameter.
type Def struct {
	ID   proto.ParamID
	Name string
	Kind Kind
	Min  int64
	Max  int64
	// Enum lists names of values 0..len-1 for KindEnum.
	Enum []string
	Help string
}

// RangeError indicates a value out of the range of a parameter.
type RangeError struct {
	Name  string
	Value int64
	Min   int64
	Max   int64
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: value %d out of range [%d, %d]", e.Name, e.Value, e.Min, e.Max)
}

// Between reports lo <= v && v <= hi.
func Between[T constraints.Ordered](v, lo, hi T) bool {
	return v >= lo && v <= hi
}

// Int gets the value as interpreted by the kind of the parameter.
func (d *Def) Int(v proto.ParamValue) int64 {
	switch d.Kind {
	case KindS32:
		return int64(v.S32())
	case KindU16:
		return int64(v.U16(0))
	case KindS16:
		return int64(v.S16(0))
	case KindU8:
		return int64(v.U8(0))
	default:
		return int64(v.U32())
	}
}

// Value creates a ParamValue from an integer according to the kind.
func (d *Def) Value(n int64) proto.ParamValue {
	switch d.Kind {
	case KindS32:
		return proto.S32Value(int32(n))
	case KindU16:
		return proto.U16Value(uint16(n), 0)
	case KindS16:
		return proto.S16Value(int16(n), 0)
	case KindU8:
		return proto.U8Value(uint8(n), 0, 0, 0)
	default:
		return proto.U32Value(uint32(n))
	}
}

func (d *Def) bounds() (int64, int64) {
	if d.Kind == KindEnum {
		return 0, int64(len(d.Enum)) - 1
	}
	return d.Min, d.Max
}

// Validate checks the value is in the range of the parameter.
// Lanes not used by the kind must be zero.
func (d *Def) Validate(v proto.ParamValue) error {
	n := d.Int(v)
	if d.Value(n) != v {
		return fmt.Errorf("%s: unused bytes set in %v", d.Name, v)
	}
	if lo, hi := d.bounds(); !Between(n, lo, hi) {
		return &RangeError{Name: d.Name, Value: n, Min: lo, Max: hi}
	}
	return nil
}

// ParseValue parses a string into a validated ParamValue.
// Enum names are accepted for KindEnum.
func (d *Def) ParseValue(s string) (proto.ParamValue, error) {
	if d.Kind == KindEnum {
		for n, name := range d.Enum {
			if strings.EqualFold(name, s) {
				return d.Value(int64(n)), nil
			}
		}
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return proto.ParamValue{}, fmt.Errorf("%s: invalid value %q", d.Name, s)
	}
	if lo, hi := d.bounds(); !Between(n, lo, hi) {
		return proto.ParamValue{}, &RangeError{Name: d.Name, Value: n, Min: lo, Max: hi}
	}
	return d.Value(n), nil
}

// Format renders a value for display.
func (d *Def) Format(v proto.ParamValue) string {
	n := d.Int(v)
	if d.Kind == KindEnum && Between(n, 0, int64(len(d.Enum))-1) {
		return d.Enum[n]
	}
	return strconv.FormatInt(n, 10)
}
