package relay

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"clientintake/internal/model"
)

// instrumentedRelay records outcome and latency of every Send.
type instrumentedRelay struct {
	next     Relay
	sent     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrumented wraps next with Prometheus metrics registered on reg.
func Instrumented(next Relay, reg prometheus.Registerer) (Relay, error) {
	r := &instrumentedRelay{
		next: next,
		sent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_relay_submissions_total",
				Help: "Client applications posted to the relay, by outcome.",
			},
			[]string{"provider", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "intake_relay_duration_seconds",
				Help:    "Latency of relay submissions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
	}

	if err := reg.Register(r.sent); err != nil {
		return nil, err
	}
	if err := reg.Register(r.duration); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *instrumentedRelay) Provider() string {
	return r.next.Provider()
}

func (r *instrumentedRelay) Send(ctx context.Context, app model.ClientApplication) (Result, error) {
	start := time.Now()
	res, err := r.next.Send(ctx, app)
	r.duration.WithLabelValues(r.Provider()).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.sent.WithLabelValues(r.Provider(), outcome).Inc()
	return res, err
}
