// Package all registers all shell commands.
package all

import (
	_ "github.com/robotalks/synth.go/pkg/cli/cmds/module"
)
