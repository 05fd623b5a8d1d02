// Package relay forwards client applications to a third-party form-handling
// endpoint (a hosted form relay or a static-site form handler).
// A relay performs exactly one outbound request per Send and never retries.
package relay

import (
	"context"
	"errors"
	"fmt"

	"clientintake/internal/model"
)

// ErrNoEndpoint is returned by Send when no endpoint is configured.
var ErrNoEndpoint = errors.New("relay endpoint is not configured")

// Result describes the endpoint's answer to an accepted submission.
type Result struct {
	StatusCode int
}

// StatusError reports a non-2xx answer from the endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("relay responded with status %d", e.StatusCode)
}

// Relay sends a validated application to the form-handling endpoint.
type Relay interface {
	// Send posts the application once. Any 2xx answer is success.
	Send(ctx context.Context, app model.ClientApplication) (Result, error)
	// Provider names the endpoint flavour, used in logs and metrics.
	Provider() string
}
