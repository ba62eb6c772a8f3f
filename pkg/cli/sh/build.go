package sh

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/params"
	"github.com/robotalks/synth.go/pkg/tdm"
)

// LookupParam finds a parameter by name or numeric ID.
func LookupParam(cat *params.Catalog, nameOrID string) (*params.Def, error) {
	if def, ok := cat.LookupName(nameOrID); ok {
		return def, nil
	}
	n, err := strconv.ParseUint(nameOrID, 0, 16)
	if err != nil {
		return nil, fmt.Errorf("unknown parameter %q", nameOrID)
	}
	if def, ok := cat.Lookup(proto.ParamID(n)); ok {
		return def, nil
	}
	return nil, fmt.Errorf("unknown parameter %v", proto.ParamID(n))
}

// BuildSetParam creates a validated SetParam message.
func BuildSetParam(cat *params.Catalog, nameOrID, value string) (*msgs.SetParam, error) {
	def, err := LookupParam(cat, nameOrID)
	if err != nil {
		return nil, err
	}
	v, err := def.ParseValue(value)
	if err != nil {
		return nil, err
	}
	return &msgs.SetParam{ID: def.ID, Value: v}, nil
}

// BuildI2SConfig creates a validated I2SConfig message from slot lists.
func BuildI2SConfig(in, out string, bidirectional bool) (*msgs.I2SConfig, error) {
	var msg msgs.I2SConfig
	var err error
	if msg.InputSlots, err = tdm.ParseSlots(in); err != nil {
		return nil, fmt.Errorf("input slots: %v", err)
	}
	if msg.OutputSlots, err = tdm.ParseSlots(out); err != nil {
		return nil, fmt.Errorf("output slots: %v", err)
	}
	if err = tdm.Validate(msg.I2SConfig, bidirectional); err != nil {
		return nil, err
	}
	return &msg, nil
}

// DecodeHex parses a message from hex, spaces allowed.
func DecodeHex(str string) (msgs.Message, error) {
	raw, err := hex.DecodeString(strings.Join(strings.Fields(str), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %v", err)
	}
	return msgs.Parse(raw)
}

// Description is the printable form of a message.
type Description struct {
	Command string `json:"command"`
	Param   string `json:"param,omitempty"`
	Value   string `json:"value,omitempty"`
	Valid   *bool  `json:"valid,omitempty"`
	Input   string `json:"input,omitempty"`
	Output  string `json:"output,omitempty"`
	Hex     string `json:"hex"`
}

// String implements fmt.Stringer.
func (d Description) String() string {
	var b strings.Builder
	b.WriteString(d.Command)
	if d.Param != "" {
		fmt.Fprintf(&b, " %s=%s", d.Param, d.Value)
		if d.Valid != nil && !*d.Valid {
			b.WriteString(" (out of range)")
		}
	}
	if d.Input != "" || d.Output != "" {
		fmt.Fprintf(&b, " in=%s out=%s", d.Input, d.Output)
	}
	fmt.Fprintf(&b, " [%s]", d.Hex)
	return b.String()
}

// Describe renders a message with parameter names from the catalog.
func Describe(cat *params.Catalog, msg msgs.Message) Description {
	d := Description{Command: fmt.Sprintf("0x%02x", msg.Command())}
	if data, err := msgs.Encode(msg); err == nil {
		d.Hex = fmt.Sprintf("% x", data)
	}
	switch m := msg.(type) {
	case *msgs.SetParam:
		d.Command = "set"
		d.Param, d.Value = m.ID.String(), m.Value.String()
		if def, ok := cat.Lookup(m.ID); ok {
			valid := def.Validate(m.Value) == nil
			d.Param, d.Value, d.Valid = def.Name, def.Format(m.Value), &valid
		}
	case *msgs.I2SConfig:
		d.Command = "i2s"
		d.Input, d.Output = tdm.FormatMask(m.InputSlots), tdm.FormatMask(m.OutputSlots)
	case *msgs.Reset:
		d.Command = "reset"
	case *msgs.SaveSettings:
		d.Command = "save"
	case *msgs.LoadSettings:
		d.Command = "load"
	}
	return d
}

// BuildMessage creates a message from command line words:
//
//	set NAME|ID VALUE
//	i2s IN OUT [bidir]
//	reset | save | load
func BuildMessage(cat *params.Catalog, args []string) (msgs.Message, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("command required")
	}
	switch strings.ToLower(args[0]) {
	case "set":
		if len(args) != 3 {
			return nil, fmt.Errorf("usage: set NAME|ID VALUE")
		}
		return BuildSetParam(cat, args[1], args[2])
	case "i2s":
		if len(args) < 3 || len(args) > 4 {
			return nil, fmt.Errorf("usage: i2s IN OUT [bidir]")
		}
		bidir := len(args) == 4
		if bidir && args[3] != "bidir" {
			return nil, fmt.Errorf("unexpected %q, expect bidir", args[3])
		}
		return BuildI2SConfig(args[1], args[2], bidir)
	case "reset":
		return &msgs.Reset{}, nil
	case "save":
		return &msgs.SaveSettings{}, nil
	case "load":
		return &msgs.LoadSettings{}, nil
	}
	return nil, fmt.Errorf("unknown command %q", args[0])
}
