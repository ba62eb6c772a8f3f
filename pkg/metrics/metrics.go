// Package metrics defines Prometheus metrics of message transports.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PacketsSent counts packets written to a sink.
	PacketsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synth_packets_sent_total",
		Help: "Total number of packets written to a sink",
	}, []string{"sink", "command"})

	// SendErrors counts failures of encoding or writing packets.
	SendErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synth_send_errors_total",
		Help: "Total number of packets failed to encode or write",
	}, []string{"sink", "command"})

	// PacketsParsed counts received packets decoded successfully.
	PacketsParsed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synth_packets_parsed_total",
		Help: "Total number of received packets decoded",
	}, []string{"command"})

	// ParseErrors counts received packets rejected by the decoder.
	ParseErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "synth_parse_errors_total",
		Help: "Total number of received packets failed to decode",
	})
)

// CommandLabel formats a command byte as a label value.
func CommandLabel(cmd byte) string {
	return fmt.Sprintf("0x%02x", cmd)
}

// Handler serves the metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
