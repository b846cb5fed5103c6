// Package metrics defines the custom Prometheus metrics of the dispatch form
// API. Metrics register with the default registry on import; request level
// metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dispatch"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SubmissionsTotal counts form submit attempts.
// Label:
//   - result: "success", "unauthenticated", "duplicate", or "error"
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of form submit attempts, by result.",
	},
	[]string{"result"},
)

// FormEditsTotal counts accepted draft edits.
// Label:
//   - target: "driver", "escort", or "note"
var FormEditsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_edits_total",
		Help:      "Total number of accepted edits to the draft form.",
	},
	[]string{"target"},
)

// RosterSize is the number of names on the driver roster after the last
// roster read or change.
var RosterSize = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "roster_size",
		Help:      "Current number of drivers on the roster.",
	},
)

// UsersTotal is the number of user accounts, admin included.
var UsersTotal = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "users",
		Help:      "Current number of user accounts.",
	},
)
