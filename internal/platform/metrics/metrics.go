// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus collectors for the web server.

Collectors are registered on an explicit [prometheus.Registerer] rather than the
global default, so tests can build isolated instances.

Series:

  - fyyur_http_requests_total{method,route,status}
  - fyyur_http_request_duration_seconds{method,route}
  - fyyur_listings_total{entity,action}
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

// Listing mutations counted by [Metrics.ListingChanged].
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Metrics holds the application's collectors.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	listings *prometheus.CounterVec
}

// New registers the collectors on registry.
func New(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		gatherer: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: constants.AppName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		listings: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: constants.AppName,
			Name:      "listings_total",
			Help:      "Venue, artist and show mutations.",
		}, []string{"entity", "action"}),
	}
}

// ObserveRequest records one finished request.
func (metrics *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if metrics == nil {
		return
	}
	metrics.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	metrics.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ListingChanged counts a successful create, update or delete.
func (metrics *Metrics) ListingChanged(entity, action string) {
	if metrics == nil {
		return
	}
	metrics.listings.WithLabelValues(entity, action).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (metrics *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(metrics.gatherer, promhttp.HandlerOpts{})
}
