// Package failover implements the Failover Monitor (component E): a
// background probe loop that flips the Replicated Writer's failover_mode
// flag when the peer replica stops answering.
package failover

import (
	"context"
	"time"

	"ftwallet/internal/ledger/walletrpc"
	"ftwallet/internal/metrics"
	"ftwallet/internal/pkg/logging"
	"ftwallet/internal/replication"
)

// HealthChecker is the subset of *replication.Client the monitor depends
// on, extracted so tests can substitute a fake peer without a real gRPC
// dial.
type HealthChecker interface {
	Health(ctx context.Context) (*walletrpc.HealthResponse, error)
}

// Monitor runs the HEALTHY⇄FAILOVER state machine described in §4.E: every
// probeInterval, call the peer's Health RPC with a probeTimeout deadline; the first
// failed probe flips to FAILOVER and logs critical, the first successful
// probe flips back.
type Monitor struct {
	client        HealthChecker
	flag          *replication.FailoverFlag
	probeInterval time.Duration
	probeTimeout  time.Duration

	stop chan struct{}
	done chan struct{}
}

// NewMonitor wires a Replication Client and the shared failover flag into a
// monitor. It starts in HEALTHY state, matching the flag's zero value.
func NewMonitor(client HealthChecker, flag *replication.FailoverFlag, probeInterval, probeTimeout time.Duration) *Monitor {
	return &Monitor{
		client:        client,
		flag:          flag,
		probeInterval: probeInterval,
		probeTimeout:  probeTimeout,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Run loops on a time.Ticker until Stop is called. It is meant to be
// launched as the monitor's single background goroutine.
func (m *Monitor) Run() {
	defer close(m.done)

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.probe()
		}
	}
}

// Stop signals Run to return and blocks until it has.
func (m *Monitor) Stop() {
	close(m.stop)
	<-m.done
}

func (m *Monitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), m.probeTimeout)
	defer cancel()

	wasInFailover := m.flag.InFailover()
	_, err := m.client.Health(ctx)

	if err != nil {
		if !wasInFailover {
			logging.Critical("failover monitor: peer unreachable, entering failover mode", map[string]interface{}{
				"error": err.Error(),
			})
		}
		m.flag.Set(true)
		metrics.SetFailoverMode(true)
		return
	}

	if wasInFailover {
		logging.Info("failover monitor: peer reachable again, leaving failover mode", nil)
	}
	m.flag.Set(false)
	metrics.SetFailoverMode(false)
}
