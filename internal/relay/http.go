package relay

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"clientintake/internal/config"
	"clientintake/internal/model"
)

// maxDrain bounds how much of a response body is read before closing it.
const maxDrain = 64 << 10

// httpRelay implements Relay with a form-encoded HTTP POST.
// It is safe for concurrent use by multiple goroutines.
type httpRelay struct {
	client   *http.Client
	endpoint string
	opts     EncodeOptions
}

// NewHTTP creates a Relay posting to cfg.Endpoint.
// An empty endpoint is accepted; Send then fails with ErrNoEndpoint.
func NewHTTP(cfg config.RelayConfig) (Relay, error) {
	if cfg.Endpoint != "" {
		u, err := url.Parse(cfg.Endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse relay endpoint: %w", err)
		}
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("relay endpoint must be an absolute http(s) URL")
		}
	}

	return &httpRelay{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		endpoint: cfg.Endpoint,
		opts:     OptionsFromConfig(cfg),
	}, nil
}

func (r *httpRelay) Provider() string {
	return r.opts.Provider
}

// Send posts the application once and reports the endpoint's status.
func (r *httpRelay) Send(ctx context.Context, app model.ClientApplication) (Result, error) {
	if r.endpoint == "" {
		return Result{}, ErrNoEndpoint
	}

	body := Encode(app, r.opts).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// FormSubmit's ajax endpoint answers JSON; the body is only drained.
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("post to relay: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &StatusError{StatusCode: resp.StatusCode}
	}
	return Result{StatusCode: resp.StatusCode}, nil
}
