package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robotalks/synth.go/pkg/i2cproto/msgs"
	"github.com/robotalks/synth.go/pkg/metrics"
	"github.com/robotalks/synth.go/pkg/params"
	"github.com/robotalks/synth.go/pkg/transport"
	"github.com/robotalks/synth.go/pkg/transport/mqtt"
)

var (
	mqttURL     = "mqtt://localhost:1883/synth/"
	metricsAddr = ""
)

func init() {
	if val := os.Getenv("SYNTH_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL.")
	flag.StringVar(&metricsAddr, "metrics", metricsAddr, "Serve metrics on this address, e.g. :9100.")
}

func logPacket(_ context.Context, raw []byte, msg msgs.Message, err error) {
	if err != nil {
		log.Printf("bad packet [% x]: %v", raw, err)
		return
	}
	if m, ok := msg.(*msgs.SetParam); ok {
		if def, found := params.Default.Lookup(m.ID); found {
			log.Printf("SetParam %s=%s [% x]", def.Name, def.Format(m.Value), raw)
			return
		}
	}
	log.Printf("%v [% x]", msg, raw)
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if metricsAddr != "" {
		http.Handle("/metrics", metrics.Handler())
		go func() {
			log.Fatalln(http.ListenAndServe(metricsAddr, nil))
		}()
	}

	q, err := mqtt.NewQueueFromURL(mqttURL)
	if err != nil {
		log.Fatalln(err)
	}
	if err = q.Connect(); err != nil {
		log.Fatalln(err)
	}
	rw := mqtt.NewPacketReadWriter(q).ForMonitor()
	defer rw.Close()
	go rw.Run(ctx)

	mon := &transport.Monitor{Reader: rw, Handler: transport.HandlePacketFunc(logPacket)}
	if err = mon.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalln(err)
	}
}
