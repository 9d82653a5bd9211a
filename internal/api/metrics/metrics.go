// Package metrics defines all custom Prometheus metrics for the course
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ── Instructor application metrics ────────────────────────────────────────────

// ApplicationsSubmittedTotal counts instructor applications accepted for review.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of instructor applications submitted.",
	},
)

// ApplicationsResolvedTotal counts admin decisions on applications.
// Label:
//   - decision: "approved" or "rejected"
var ApplicationsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_resolved_total",
		Help:      "Total number of instructor applications resolved, by decision.",
	},
	[]string{"decision"},
)

// ── Course metrics ────────────────────────────────────────────────────────────

// CoursesSubmittedTotal counts course submissions that entered the pending queue.
var CoursesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_submitted_total",
		Help:      "Total number of courses submitted for review.",
	},
)

// CoursesResolvedTotal counts admin decisions on courses.
// Label:
//   - decision: "approved" or "rejected"
var CoursesResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_resolved_total",
		Help:      "Total number of courses resolved, by decision.",
	},
	[]string{"decision"},
)
