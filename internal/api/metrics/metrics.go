// Package metrics defines and registers all custom Prometheus metrics for the
// shoplite store API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shoplite"

// LoginsTotal counts login attempts.
// Labels:
//   - role: "user" or "admin"
//   - result: "success", "invalid_credentials", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// CartOpsTotal counts cart store operations reaching the service layer.
// Labels:
//   - op: "add", "remove", or "clear"
//   - result: "success" or "not_found"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// PurchasesTotal counts completed checkouts.
var PurchasesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of completed checkouts.",
	},
)

// ActivityAppendFailuresTotal counts activity log appends that failed and
// were swallowed. A rising rate means the audit trail is losing records.
var ActivityAppendFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_append_failures_total",
		Help:      "Total number of best-effort activity log appends that failed.",
	},
)
