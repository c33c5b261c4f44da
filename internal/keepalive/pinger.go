// Package keepalive runs the periodic probe that keeps idle deployments
// from being suspended by their hosting platform.
package keepalive

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger issues one best-effort GET per configured URL at a fixed interval
// from a single long-lived goroutine. Per-URL failures are logged and never
// propagate; there are no retries and no backoff.
type Pinger struct {
	urls     []string
	interval time.Duration
	client   *http.Client
	log      logrus.FieldLogger
	done     chan struct{}
}

// New builds a Pinger. The interval must be positive.
func New(urls []string, interval time.Duration, log logrus.FieldLogger) *Pinger {
	return &Pinger{
		urls:     urls,
		interval: interval,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start launches the ping loop. The loop exits when ctx is cancelled; use
// Stop to wait for it.
func (p *Pinger) Start(ctx context.Context) {
	go p.loop(ctx)
}

// Stop blocks until the loop started by Start has exited. Cancel the
// context first or Stop blocks forever.
func (p *Pinger) Stop() {
	<-p.done
}

func (p *Pinger) loop(ctx context.Context) {
	defer close(p.done)
	p.log.WithField("interval", p.interval).Info("keep-alive pinger started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.log.Info("keep-alive pinger stopped")
			return
		case <-ticker.C:
			p.pingAll(ctx)
		}
	}
}

// pingAll probes every URL once. Failures are isolated per URL so one dead
// deployment never hides the status of the others.
func (p *Pinger) pingAll(ctx context.Context) {
	for _, url := range p.urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			p.log.WithError(err).Warnf("keep-alive: bad url %s", url)
			continue
		}
		resp, err := p.client.Do(req)
		if err != nil {
			p.log.WithError(err).Warnf("keep-alive: ping failed for %s", url)
			continue
		}
		resp.Body.Close()
		p.log.Infof("keep-alive: %s -> %d", url, resp.StatusCode)
	}
}
