// Package metrics defines and registers the custom Prometheus metrics for
// the account service. It is the single source of truth for metric names,
// labels, and help strings. Per-request HTTP metrics come from the
// echoprometheus middleware; these counters cover domain events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// UsersCreatedTotal counts successfully created account records.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// UsersDeletedTotal counts hard-deleted account records.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are not broken down further,
//     matching the uniform unauthorized response)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
