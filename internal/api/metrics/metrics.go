// Package metrics defines the custom Prometheus metrics for the shelter API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelter"

// AnimalsCreatedTotal counts animal records created, single and batch alike.
// Label:
//   - mode: "single" or "batch"
var AnimalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animals_created_total",
		Help:      "Total number of animal records created.",
	},
	[]string{"mode"},
)

// AnimalsDeletedTotal counts animal records removed from the store.
var AnimalsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animals_deleted_total",
		Help:      "Total number of animal records deleted.",
	},
)

// AnimalSearchesTotal counts substring searches over the collection.
var AnimalSearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animal_searches_total",
		Help:      "Total number of animal search queries served.",
	},
)

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - operation: "login" or "register"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login and registration attempts, by result.",
	},
	[]string{"operation", "result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected with HTTP 429.",
	},
)
