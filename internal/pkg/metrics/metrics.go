// Package metrics defines and registers the custom Prometheus metrics of the
// content API. It is the single source of truth for metric names, labels and
// help strings. HTTP request metrics come from echoprometheus and are not
// declared here.
//
// All metrics are registered with the default registry at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content"

// ── Upload metrics ────────────────────────────────────────────────────────────

// ImageUploadsTotal counts calls to the remote image host.
// Labels:
//   - resource: "category", "article" or "asset"
//   - result: "success" or "error"
var ImageUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Total number of image uploads to the asset host, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ImageUploadDuration measures the round trip to the image host.
var ImageUploadDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_upload_duration_seconds",
		Help:      "Duration of image uploads to the asset host.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Resource metrics ──────────────────────────────────────────────────────────

// ResourceWritesTotal counts successful store writes.
// Labels:
//   - resource: "category", "article", "asset" or "quiz"
//   - operation: "create", "update" or "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of successful resource writes, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts signup and signin attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "conflict", "invalid_credentials" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Idempotency metrics ───────────────────────────────────────────────────────

// IdempotencyLookupsTotal counts idempotency-key lookups.
// Label:
//   - result: "hit" (stored response replayed), "miss" or "error"
var IdempotencyLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_lookups_total",
		Help:      "Total number of idempotency-key lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)
