// Package bearer gates startup on network readiness.
package bearer

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/dorra-iot/dorrad/internal/config"
	"github.com/dorra-iot/dorrad/internal/log"
)

// Gate blocks until the network bearer can carry traffic to the broker.
// Readiness is a successful TCP dial of the probe address; the session is not
// opened before Wait returns nil.
type Gate struct {
	probeAddr string
	interval  time.Duration
	timeout   time.Duration
	log       *log.Logger
}

// New creates a readiness gate for the configured probe address
func New(cfg *config.BearerConfig, logger *log.Logger) *Gate {
	return &Gate{
		probeAddr: cfg.ProbeAddress,
		interval:  cfg.ProbeInterval,
		timeout:   cfg.WaitTimeout,
		log:       logger,
	}
}

// Wait polls until the bearer is ready, ctx is canceled, or the configured
// wait timeout elapses.
func (g *Gate) Wait(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.log.Info("Waiting for network bearer (probing %s)", g.probeAddr)

	for {
		if g.ready() {
			g.log.Info("Network bearer ready")
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("network bearer not ready: %w", ctx.Err())
		case <-time.After(g.interval):
		}
	}
}

// ready dials the probe address. A completed dial subsumes interface and
// route state, so no separate link check is needed.
func (g *Gate) ready() bool {
	conn, err := net.DialTimeout("tcp", g.probeAddr, g.interval)
	if err != nil {
		g.log.Debug("Bearer probe failed: %v", err)
		return false
	}
	_ = conn.Close()
	return true
}
