package keepalive

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Pinger periodically requests the service's own public URL so the hosting
// platform does not idle the instance. It runs on its own goroutine and
// shares no state with the analytics path.
type Pinger struct {
	url      string
	interval time.Duration
	client   *http.Client

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewPinger(url string, interval time.Duration) *Pinger {
	return &Pinger{
		url:      url,
		interval: interval,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Start launches the ping loop and reports whether it actually started.
// Only https URLs are pinged; anything else leaves the pinger disabled,
// which is what local development setups want.
func (p *Pinger) Start(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running || !strings.HasPrefix(p.url, "https://") {
		return false
	}

	ctx, p.cancel = context.WithCancel(ctx)
	p.done = make(chan struct{})
	p.running = true
	go p.run(ctx)
	return true
}

// Stop cancels the loop and waits for it to exit. Safe to call when the
// pinger never started.
func (p *Pinger) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.cancel()
	<-p.done
	p.running = false
}

// Active reports whether the ping loop is currently running.
func (p *Pinger) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Pinger) Interval() time.Duration {
	return p.interval
}

func (p *Pinger) run(ctx context.Context) {
	defer close(p.done)
	logger := zerolog.Ctx(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.ping(ctx, logger)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *Pinger) ping(ctx context.Context, logger *zerolog.Logger) {
	// The request path appends "/", so the configured URL must not end
	// with one.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/", nil)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build self-ping request")
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Warn().Err(err).Msg("self-ping failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn().Int("status", resp.StatusCode).Msg("self-ping returned unexpected status")
		return
	}
	logger.Debug().Str("url", p.url).Msg("self-ping ok")
}
