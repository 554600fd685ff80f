package router

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	routeDuration *prometheus.HistogramVec
	routeFailures *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		routeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "router",
			Name:      "subroute_duration_seconds",
			Help:      "time spent computing one subroute, by world graph mode",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14),
		}, []string{"mode"}),
		routeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "router",
			Name:      "route_failures_total",
			Help:      "routes that failed, by reason",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.routeDuration, m.routeFailures)
	return m
}

func (m *Metrics) observeSubroute(mode string, begin time.Time) {
	if m == nil {
		return
	}
	m.routeDuration.WithLabelValues(mode).Observe(time.Since(begin).Seconds())
}

func (m *Metrics) observeFailure(err error) {
	if m == nil || err == nil {
		return
	}
	reason := "other"
	switch {
	case errors.Is(err, ErrPointNotProjected):
		reason = "not_projected"
	case errors.Is(err, ErrRouteNotFoundLeaps):
		reason = "leaps"
	case errors.Is(err, ErrNoRoute):
		reason = "no_route"
	}
	m.routeFailures.WithLabelValues(reason).Inc()
}
