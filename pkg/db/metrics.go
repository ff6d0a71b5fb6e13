package db

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "inkpress",
		Subsystem: "db",
		Name:      "pools_created_total",
		Help:      "Connection pools opened by the session cache.",
	})

	sessionsAcquired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "inkpress",
		Subsystem: "db",
		Name:      "sessions_acquired_total",
		Help:      "Sessions handed out by the session cache.",
	})
)
