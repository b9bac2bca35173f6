package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated is a Prometheus counter for tracking the total number of products updated.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// LoginAttempts counts employee logins by outcome (success, rejected, error).
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "employee_login_attempts_total",
		Help: "Employee login attempts partitioned by outcome",
	}, []string{"outcome"})

	// OutboxEventsPublished counts outbox events by final status.
	OutboxEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_total",
		Help: "Outbox events handled by the worker partitioned by resulting status",
	}, []string{"status"})
)
