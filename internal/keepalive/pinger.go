// Package keepalive pings the bot's own public URL on an interval so hosting
// platforms that idle inactive web services keep the process running.
package keepalive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/osse101/MagicCritBot_Go/internal/metrics"
)

// Config controls the ping loop
type Config struct {
	URL      string
	Interval time.Duration
	Timeout  time.Duration
}

// Pinger issues GET requests against URL every Interval until stopped.
// Failed pings are logged and counted; they never end the loop.
type Pinger struct {
	cfg    Config
	client *http.Client

	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// New creates a pinger. A nil client gets one with cfg.Timeout.
func New(cfg Config, client *http.Client) *Pinger {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Pinger{
		cfg:    cfg,
		client: client,
		quit:   make(chan struct{}),
	}
}

// Start launches the loop. It returns immediately.
func (p *Pinger) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.cfg.Interval)
		defer ticker.Stop()

		slog.Info("Keep-alive started", "url", p.cfg.URL, "interval", p.cfg.Interval)
		for {
			select {
			case <-ticker.C:
				if err := p.Ping(ctx); err != nil {
					slog.Warn("Keep-alive ping failed", "url", p.cfg.URL, "error", err)
				}
			case <-ctx.Done():
				return
			case <-p.quit:
				return
			}
		}
	}()
}

// Stop ends the loop and waits for an in-flight ping to finish
func (p *Pinger) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

// Ping sends a single request. Any 2xx or 3xx status counts as success.
func (p *Pinger) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.URL, nil)
	if err != nil {
		metrics.KeepAlivePings.WithLabelValues(metrics.PingStatusFailed).Inc()
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.KeepAlivePings.WithLabelValues(metrics.PingStatusFailed).Inc()
		return fmt.Errorf("ping %s: %w", p.cfg.URL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.KeepAlivePings.WithLabelValues(metrics.PingStatusFailed).Inc()
		return fmt.Errorf("ping %s: unexpected status %d", p.cfg.URL, resp.StatusCode)
	}

	metrics.KeepAlivePings.WithLabelValues(metrics.PingStatusOK).Inc()
	slog.Debug("Keep-alive ping ok", "status", resp.StatusCode)
	return nil
}
