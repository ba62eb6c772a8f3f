// Package tdm provides helpers for TDM slot masks used in I2S configuration.
package tdm

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
)

// MaxSlots is the number of slots a mask can address.
const MaxSlots = 16

// ErrSlotRange indicates a slot number outside [0, MaxSlots).
var ErrSlotRange = errors.New("slot out of range")

// OverlapError indicates slots used for both input and output.
type OverlapError struct {
	Mask uint16
}

// Error implements error.
func (e *OverlapError) Error() string {
	return "slots used as both input and output: " + FormatMask(e.Mask)
}

// MaskOf builds a mask from slot numbers.
func MaskOf(slots ...int) (uint16, error) {
	var mask uint16
	for _, s := range slots {
		if s < 0 || s >= MaxSlots {
			return 0, fmt.Errorf("slot %d: %w", s, ErrSlotRange)
		}
		mask |= 1 << uint(s)
	}
	return mask, nil
}

// Slots lists slot numbers set in mask in ascending order.
func Slots(mask uint16) []int {
	slots := make([]int, 0, bits.OnesCount16(mask))
	for s := 0; s < MaxSlots; s++ {
		if mask&(1<<uint(s)) != 0 {
			slots = append(slots, s)
		}
	}
	return slots
}

// FormatMask renders a mask as comma separated slot numbers, "-" if empty.
func FormatMask(mask uint16) string {
	if mask == 0 {
		return "-"
	}
	slots := Slots(mask)
	strs := make([]string, len(slots))
	for n, s := range slots {
		strs[n] = strconv.Itoa(s)
	}
	return strings.Join(strs, ",")
}

// ParseSlots parses the format of FormatMask. Ranges like "0-3" are accepted.
func ParseSlots(str string) (uint16, error) {
	str = strings.TrimSpace(str)
	if str == "-" || str == "" {
		return 0, nil
	}
	var mask uint16
	for _, item := range strings.Split(str, ",") {
		lo, hi := item, item
		if n := strings.Index(item, "-"); n > 0 {
			lo, hi = item[:n], item[n+1:]
		}
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return 0, fmt.Errorf("invalid slot %q", item)
		}
		to, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil || to < from {
			return 0, fmt.Errorf("invalid slot %q", item)
		}
		for s := from; s <= to; s++ {
			m, err := MaskOf(s)
			if err != nil {
				return 0, err
			}
			mask |= m
		}
	}
	return mask, nil
}

// Validate rejects slots used for both input and output unless
// bidirectional use is requested.
func Validate(cfg proto.I2SConfig, bidirectional bool) error {
	if overlap := cfg.InputSlots & cfg.OutputSlots; overlap != 0 && !bidirectional {
		return &OverlapError{Mask: overlap}
	}
	return nil
}
