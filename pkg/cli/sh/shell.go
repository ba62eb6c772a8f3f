package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/synth.go/pkg/env"
	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/params"
	"github.com/robotalks/synth.go/pkg/transport"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Config  *env.Config
	Catalog *params.Catalog
	Sender  *transport.Sender
}

const shellKey = "$shell"

var (
	// flags

	evalOnly   bool
	outputJSON bool

	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:   ishell.New(),
		Config:  conf,
		Catalog: params.Default,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(conf.Module + " > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a sink.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Sender == nil {
			c.Err(fmt.Errorf("not connected"))
			return
		}
		fn(c)
	}
}

// Connect opens the sink configured.
func (s *Shell) Connect() error {
	w, err := s.Config.NewWriter()
	if err != nil {
		return err
	}
	s.Sender = transport.NewSender(s.Config.SinkURL, w)
	return nil
}

// Close closes the sink.
func (s *Shell) Close() {
	if s.Sender != nil {
		if err := s.Sender.Close(); err != nil {
			glog.Warningf("close sink error: %v", err)
		}
		s.Sender = nil
	}
}

// Print prints a message in text or JSON.
func (s *Shell) Print(c *ishell.Context, msg msgs.Message) {
	if s.OutputJSON {
		out, err := json.Marshal(Describe(s.Catalog, msg))
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Println(Describe(s.Catalog, msg).String())
}

// DoCommand sends a message.
func DoCommand(c *ishell.Context, msg msgs.Message) error {
	s := ShellFrom(c)
	if err := s.Sender.Send(msg); err != nil {
		c.Err(err)
		return err
	}
	if s.Interactive && !s.OutputJSON {
		c.Println("OK")
	}
	return nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if err := s.Connect(); err != nil {
		log.Fatalf("open sink %q failed: %v", s.Config.SinkURL, err)
	}
	defer s.Close()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.NewConfig()).Run(flag.Args()...)
}
