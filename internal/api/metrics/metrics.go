// Package metrics defines and registers all custom Prometheus metrics for the
// asset management API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto and served by the echoprometheus handler at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assets"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthLoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited" or "error"
var AuthLoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate", "invalid" or "error"
var AuthRegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// AuthGateTotal counts the terminal state of the per-request bearer gate.
// Label:
//   - state: "bound", "no_header", "not_bearer", "rejected"
var AuthGateTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_gate_total",
		Help:      "Requests passing the authentication gate, by terminal state.",
	},
	[]string{"state"},
)

// ── Asset metrics ─────────────────────────────────────────────────────────────

// AssetsCreatedTotal counts newly created assets.
// Label:
//   - status: initial asset status (always "ACTIVE" today)
var AssetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assets_created_total",
		Help:      "Total number of assets created, by initial status.",
	},
	[]string{"status"},
)

// DisposalsTotal counts disposal workflow steps.
// Label:
//   - stage: "requested", "replayed" or "approved"
var DisposalsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "disposals_total",
		Help:      "Total number of disposal workflow steps, by stage.",
	},
	[]string{"stage"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsPublishedTotal counts deliveries to each audit sink.
// Labels:
//   - sink: sink name ("mongo", "amqp")
//   - result: "ok" or "error"
var AuditEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_published_total",
		Help:      "Total number of audit event deliveries, by sink and result.",
	},
	[]string{"sink", "result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditPublishDuration measures a single sink delivery.
// Label:
//   - sink: sink name
var AuditPublishDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_publish_duration_seconds",
		Help:      "Duration of one audit event delivery to one sink.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"sink"},
)
