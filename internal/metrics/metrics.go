// Package metrics provides Prometheus metrics for the display bus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	busTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tm1628",
		Subsystem: "bus",
		Name:      "transactions_total",
		Help:      "Bus transactions issued to the display controller",
	}, []string{"result"})

	busBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tm1628",
		Subsystem: "bus",
		Name:      "bytes_written_total",
		Help:      "Bytes written to the display controller",
	})
)

// HTTPHandler returns the Prometheus metrics HTTP handler.
// This collects all promauto-registered metrics automatically.
func HTTPHandler() http.Handler {
	return promhttp.Handler()
}

// WrapPort wraps an SPI port so that every transaction on connections made
// through it is counted. The driver on top notices nothing.
func WrapPort(p spi.PortCloser) spi.PortCloser {
	return &countingPort{p}
}

type countingPort struct {
	spi.PortCloser
}

func (p *countingPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	c, err := p.PortCloser.Connect(f, mode, bits)
	if err != nil {
		return nil, err
	}
	return &countingConn{c}, nil
}

type countingConn struct {
	spi.Conn
}

func (c *countingConn) Tx(w, r []byte) error {
	if err := c.Conn.Tx(w, r); err != nil {
		busTransactions.WithLabelValues("error").Inc()
		return err
	}
	busTransactions.WithLabelValues("ok").Inc()
	busBytes.Add(float64(len(w)))
	return nil
}

func (c *countingConn) TxPackets(pkts []spi.Packet) error {
	if err := c.Conn.TxPackets(pkts); err != nil {
		busTransactions.WithLabelValues("error").Inc()
		return err
	}
	busTransactions.WithLabelValues("ok").Inc()
	for _, pkt := range pkts {
		busBytes.Add(float64(len(pkt.W)))
	}
	return nil
}
