// Package env provides common options to setup sinks talking to modules.
package env

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"tinygo.org/x/drivers"

	proto "github.com/robotalks/synth.go/pkg/i2cproto"
	"github.com/robotalks/synth.go/pkg/transport"
	"github.com/robotalks/synth.go/pkg/transport/i2c"
	"github.com/robotalks/synth.go/pkg/transport/mqtt"
	"github.com/robotalks/synth.go/pkg/transport/stream"
	"github.com/robotalks/synth.go/pkg/transport/websocket"
)

// Config provides common options to reach a module.
type Config struct {
	// SinkURL specifies where encoded messages go, e.g.
	// mqtt://host:port/topic-prefix/, ws://host:port/path,
	// tcp://host:port, i2c: or stdout:
	SinkURL string
	// Module is the module type name.
	Module string
	// ID identifies the module on the bridge.
	ID string
	// Address is the bus address of the module for the i2c: sink.
	Address uint16
	// I2CBus is the bus used by the i2c: sink. Programs owning a bus
	// set it before NewWriter.
	I2CBus drivers.I2C
}

var defaultConfig = Config{
	SinkURL: "stdout:",
	Module:  proto.ModuleOscillator.String(),
	Address: i2c.DefaultAddress,
}

func init() {
	if err := loadEnv(&defaultConfig, os.Getenv); err != nil {
		glog.Warningf("ignore environment: %v", err)
	}
}

func loadEnv(conf *Config, getenv func(string) string) error {
	if val := getenv("SYNTH_SINK_URL"); val != "" {
		conf.SinkURL = val
	}
	if val := getenv("SYNTH_MODULE"); val != "" {
		conf.Module = val
	}
	if val := getenv("SYNTH_ID"); val != "" {
		conf.ID = val
	}
	if val := getenv("SYNTH_I2C_ADDR"); val != "" {
		addr, err := ParseAddress(val)
		if err != nil {
			return fmt.Errorf("SYNTH_I2C_ADDR: %v", err)
		}
		conf.Address = addr
	}
	return nil
}

type addressFlag struct {
	addr *uint16
}

func (f addressFlag) String() string {
	if f.addr == nil {
		return ""
	}
	return fmt.Sprintf("0x%02x", *f.addr)
}

func (f addressFlag) Set(val string) error {
	addr, err := ParseAddress(val)
	if err != nil {
		return err
	}
	*f.addr = addr
	return nil
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.SinkURL, "sink", defaultConfig.SinkURL, "Sink URL: mqtt://, ws://, tcp://, i2c: or stdout:")
	flag.StringVar(&defaultConfig.Module, "module", defaultConfig.Module, "Module type.")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Module ID, default machine ID.")
	flag.Var(addressFlag{&defaultConfig.Address}, "addr", "I2C address of the module, used by the i2c: sink.")
}

// ParseAddress parses a 7-bit bus address.
func ParseAddress(val string) (uint16, error) {
	n, err := strconv.ParseUint(val, 0, 16)
	if err != nil || n == 0 || n > 0x7f {
		return 0, fmt.Errorf("invalid I2C address %q", val)
	}
	return uint16(n), nil
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ModuleType resolves the configured module type.
func (c *Config) ModuleType() (proto.ModuleType, error) {
	typ, ok := proto.ParseModuleType(c.Module)
	if !ok {
		return 0, fmt.Errorf("unknown module type %q", c.Module)
	}
	return typ, nil
}

// ModuleRef builds the reference of the module, using machine ID if ID
// is not configured.
func (c *Config) ModuleRef() (transport.ModuleRef, error) {
	typ, err := c.ModuleType()
	if err != nil {
		return transport.ModuleRef{}, err
	}
	ref := transport.ModuleRef{Type: typ.String(), ID: c.ID}
	if ref.ID == "" {
		if ref.ID, err = machineid.ID(); err != nil {
			return ref, fmt.Errorf("machine ID unavailable, specify -id: %v", err)
		}
	}
	return ref, nil
}

// NewWriter creates the PacketWriter of the sink.
func (c *Config) NewWriter() (transport.PacketWriter, error) {
	u, err := url.Parse(c.SinkURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sink URL: %v", err)
	}
	switch u.Scheme {
	case "stdout":
		return NewHexWriter(os.Stdout), nil
	case "i2c":
		if c.I2CBus == nil {
			return nil, i2c.ErrNoBus
		}
		return i2c.New(c.I2CBus, c.Address), nil
	case "tcp":
		conn, err := net.Dial("tcp", u.Host)
		if err != nil {
			return nil, err
		}
		return stream.New(conn), nil
	case "ws", "wss":
		rw, err := websocket.Dial(c.SinkURL)
		if err != nil {
			return nil, err
		}
		return rw, nil
	case "mqtt", "mqtts":
		ref, err := c.ModuleRef()
		if err != nil {
			return nil, err
		}
		q, err := mqtt.NewQueueFromURL(c.SinkURL)
		if err != nil {
			return nil, err
		}
		if err = q.Connect(); err != nil {
			return nil, fmt.Errorf("connect MQTT broker error: %v", err)
		}
		return mqtt.NewPacketReadWriter(q).ForController(ref), nil
	default:
		return nil, fmt.Errorf("unknown sink URL scheme: %q", u.Scheme)
	}
}

// MustNewWriter creates the PacketWriter and fails on error.
func (c *Config) MustNewWriter() transport.PacketWriter {
	w, err := c.NewWriter()
	if err != nil {
		log.Fatalln(err)
	}
	return w
}
