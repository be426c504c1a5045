// Package metrics exposes gameplay counters for Prometheus.
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/snowfall-arcade/internal/core"
)

// Collector bundles the arcade's Prometheus metrics. A nil *Collector is
// valid and records nothing, so callers never need to check.
type Collector struct {
	gatherer prometheus.Gatherer

	SessionsTotal  prometheus.Counter
	ActiveSessions prometheus.Gauge

	RunsStarted    *prometheus.CounterVec
	GiftsCollected *prometheus.CounterVec
	RunsWon        *prometheus.CounterVec
	RunDurations   *prometheus.HistogramVec
}

// NewCollector registers arcade metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	sessions, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "arcade_sessions_total",
		Help: "Total number of game sessions opened, local or over SSH.",
	}), "arcade_sessions_total")
	if err != nil {
		return nil, err
	}

	active, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "arcade_active_sessions",
		Help: "Number of game sessions currently open.",
	}), "arcade_active_sessions")
	if err != nil {
		return nil, err
	}

	started, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_runs_started_total",
		Help: "Total number of runs started, labeled by game.",
	}, []string{"game"}), "arcade_runs_started_total")
	if err != nil {
		return nil, err
	}

	collected, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_gifts_collected_total",
		Help: "Total number of collectibles picked up, labeled by game.",
	}, []string{"game"}), "arcade_gifts_collected_total")
	if err != nil {
		return nil, err
	}

	won, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "arcade_runs_won_total",
		Help: "Total number of runs that emptied the collectible pool, labeled by game.",
	}, []string{"game"}), "arcade_runs_won_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arcade_run_duration_seconds",
		Help:    "Wall time from run start to win, labeled by game.",
		Buckets: []float64{5, 10, 15, 20, 30, 45, 60, 90, 120, 300},
	}, []string{"game"}), "arcade_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:       gatherer,
		SessionsTotal:  sessions,
		ActiveSessions: active,
		RunsStarted:    started,
		GiftsCollected: collected,
		RunsWon:        won,
		RunDurations:   durations,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SessionOpened records a new player session.
func (c *Collector) SessionOpened() {
	if c == nil {
		return
	}
	c.SessionsTotal.Inc()
	c.ActiveSessions.Inc()
}

// SessionClosed records the end of a player session.
func (c *Collector) SessionClosed() {
	if c == nil {
		return
	}
	c.ActiveSessions.Dec()
}

// RecordEvent counts one simulation event for the given game.
func (c *Collector) RecordEvent(game string, ev core.Event) {
	if c == nil {
		return
	}
	switch ev.Kind {
	case core.EventRunStarted:
		c.RunsStarted.WithLabelValues(game).Inc()
	case core.EventCollected:
		c.GiftsCollected.WithLabelValues(game).Inc()
	case core.EventWon:
		c.RunsWon.WithLabelValues(game).Inc()
	}
}

// ObserveRun records how long a won run took.
func (c *Collector) ObserveRun(game string, d time.Duration) {
	if c == nil {
		return
	}
	c.RunDurations.WithLabelValues(game).Observe(d.Seconds())
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
