// Package netx provides network helpers for the client, currently a cheap
// server reachability probe.
package netx

import (
	"context"
	"net/http"
	"time"
)

// DefaultProbeTimeout bounds a single reachability check.
const DefaultProbeTimeout = 3 * time.Second

// Prober reports whether the backend is reachable. It performs a single GET
// against a health endpoint with a bounded timeout. Any failure (timeout,
// DNS, TLS, non-2xx status) means offline. No retries; callers decide.
type Prober struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

// NewProber builds a Prober for the given health URL. A non-positive timeout
// falls back to DefaultProbeTimeout.
func NewProber(url string, timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &Prober{
		url:     url,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// IsOnline returns true if the health endpoint answered with a 2xx status
// within the timeout. It never returns an error.
func (p *Prober) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
