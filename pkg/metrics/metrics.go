package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chillgamer"

// HTTP. Пример PromQL: rate(chillgamer_http_requests_total{service="reviews-service"}[5m])
var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route template and status code.",
	}, []string{"service", "method", "route", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"service", "method", "route"})

	HttpRequestsInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served.",
	}, []string{"service"})
)

// MongoDB
var (
	DbOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mongodb",
		Name:      "operation_duration_seconds",
		Help:      "Latency of single-collection MongoDB operations.",
		Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"service", "operation", "collection"})

	DbErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mongodb",
		Name:      "errors_total",
		Help:      "MongoDB operations that returned an error.",
	}, []string{"service", "operation", "collection"})
)

// Redis
var (
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "redis",
		Name:      "cache_lookups_total",
		Help:      "Cache reads by key and result (hit | miss).",
	}, []string{"service", "key", "result"})

	RedisOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "redis",
		Name:      "operation_duration_seconds",
		Help:      "Latency of Redis commands.",
		Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"service", "operation"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "redis",
		Name:      "errors_total",
		Help:      "Redis commands that returned an error.",
	}, []string{"service", "operation"})
)

// Kafka
var (
	KafkaMessagesProduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "messages_produced_total",
		Help:      "Messages acknowledged by the broker.",
	}, []string{"service", "topic"})

	KafkaProduceDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "produce_duration_seconds",
		Help:      "Time to write one message batch.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"service", "topic"})

	KafkaErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "kafka",
		Name:      "produce_errors_total",
		Help:      "Messages that could not be written.",
	}, []string{"service", "topic"})
)

// Отзывы и коллекции Chill Gamer
var (
	ReviewsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reviews",
		Name:      "created_total",
		Help:      "Reviews submitted via POST /reviews.",
	})

	// branch: insert | update
	ReviewsReplaced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reviews",
		Name:      "replaced_total",
		Help:      "PUT /reviews/:id by upsert branch.",
	}, []string{"branch"})

	ReviewsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reviews",
		Name:      "deleted_total",
		Help:      "Reviews actually removed.",
	})

	ReviewsRating = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reviews",
		Name:      "rating",
		Help:      "Distribution of submitted ratings.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})

	DocumentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "documents",
		Name:      "created_total",
		Help:      "Schemaless documents inserted (wishlist, users).",
	}, []string{"collection"})

	// status: success | error
	CacheWarmerRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache_warmer",
		Name:      "runs_total",
		Help:      "Scheduled top reviews cache refreshes.",
	}, []string{"status"})
)
