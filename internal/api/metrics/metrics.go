// Package metrics defines all custom Prometheus metrics for the user
// management API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userservice"

// UsersCreatedTotal counts successfully created accounts.
// Label:
//   - role: "admin", "reseller", or "user"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// UsersDeletedTotal counts deleted accounts. Delete attempts on missing ids
// are not counted.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)

// LoginAttemptsTotal counts login attempts by terminal outcome.
// Label:
//   - result: "success", "invalid_credentials", "deactivated", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// DemoSeedRunsTotal counts invocations of the demo seeder.
// Label:
//   - result: "ok" or "error"
var DemoSeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "demo_seed_runs_total",
		Help:      "Total number of demo seeding runs, by result.",
	},
	[]string{"result"},
)
