package module

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/synth.go/pkg/cli/sh"
	"github.com/robotalks/synth.go/pkg/params"
)

func sendCmd(name string) func(c *ishell.Context) {
	return sh.MustBeConnected(func(c *ishell.Context) {
		s := sh.ShellFrom(c)
		msg, err := sh.BuildMessage(s.Catalog, append([]string{name}, c.Args...))
		if err != nil {
			c.Err(err)
			return
		}
		sh.DoCommand(c, msg)
	})
}

var (
	// ParamsCmd lists known parameters.
	ParamsCmd = ishell.Cmd{
		Name: "params",
		Help: "[FAMILY]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			var family *params.Family
			if len(c.Args) > 0 {
				f, ok := params.FamilyByName(c.Args[0])
				if !ok {
					c.Err(fmt.Errorf("unknown family %q", c.Args[0]))
					return
				}
				family = &f
			}
			for _, def := range s.Catalog.Defs(family) {
				line := fmt.Sprintf("%v %-20s %s", def.ID, def.Name, def.Kind)
				if def.Kind == params.KindEnum {
					line += " " + strings.Join(def.Enum, "|")
				} else {
					line += fmt.Sprintf(" [%d, %d]", def.Min, def.Max)
				}
				if def.Help != "" {
					line += " " + def.Help
				}
				c.Println(line)
			}
		},
	}

	// SetCmd exposes SetParam command.
	SetCmd = ishell.Cmd{
		Name: "set",
		Help: "NAME|ID VALUE",
		Func: sendCmd("set"),
	}

	// I2SCmd exposes I2SConfig command.
	I2SCmd = ishell.Cmd{
		Name: "i2s",
		Help: "IN-SLOTS OUT-SLOTS [bidir], slots like 0,1 or 0-3 or -",
		Func: sendCmd("i2s"),
	}

	// ResetCmd exposes Reset command.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Func: sendCmd("reset"),
	}

	// SaveCmd exposes SaveSettings command.
	SaveCmd = ishell.Cmd{
		Name: "save",
		Func: sendCmd("save"),
	}

	// LoadCmd exposes LoadSettings command.
	LoadCmd = ishell.Cmd{
		Name: "load",
		Func: sendCmd("load"),
	}

	// EncodeCmd prints a message without sending it.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "COMMAND ARGS...",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			msg, err := sh.BuildMessage(s.Catalog, c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			s.Print(c, msg)
		},
	}

	// DecodeCmd parses a message from hex.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "HEX",
		Func: func(c *ishell.Context) {
			msg, err := sh.DecodeHex(strings.Join(c.Args, ""))
			if err != nil {
				c.Err(err)
				return
			}
			sh.ShellFrom(c).Print(c, msg)
		},
	}
)

func init() {
	sh.AddCmds(
		&ParamsCmd,
		&SetCmd,
		&I2SCmd,
		&ResetCmd,
		&SaveCmd,
		&LoadCmd,
		&EncodeCmd,
		&DecodeCmd,
	)
}
