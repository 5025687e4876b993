// Package metrics exposes prometheus counters for token generation and
// session creation.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector groups the signer metrics. A nil collector is valid and records
// nothing.
type Collector struct {
	tokensGenerated *prometheus.CounterVec
	sessionsCreated *prometheus.CounterVec
}

// NewCollector registers the signer counters with reg. When reg already holds
// counters with the same names, e.g. from another signer, they are shared.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	tokensGenerated, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gotok_tokens_generated_total",
		Help: "Number of participant tokens generated",
	}, []string{"role"}))
	if err != nil {
		return nil, err
	}

	sessionsCreated, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gotok_sessions_created_total",
		Help: "Number of session creation requests by result",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	return &Collector{
		tokensGenerated: tokensGenerated,
		sessionsCreated: sessionsCreated,
	}, nil
}

func register(reg prometheus.Registerer, counter *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(counter)
	if err == nil {
		return counter, nil
	}

	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return nil, err
	}

	existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
	if !ok {
		return nil, err
	}
	return existing, nil
}

func (c *Collector) TokenGenerated(role string) {
	if c == nil {
		return
	}
	c.tokensGenerated.WithLabelValues(role).Inc()
}

func (c *Collector) SessionCreated(err error) {
	if c == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	c.sessionsCreated.WithLabelValues(result).Inc()
}

// TokensGenerated returns the counter of generated tokens. Meant for tests.
func (c *Collector) TokensGenerated() *prometheus.CounterVec {
	return c.tokensGenerated
}

// SessionsCreated returns the counter of session creation requests. Meant for
// tests.
func (c *Collector) SessionsCreated() *prometheus.CounterVec {
	return c.sessionsCreated
}
