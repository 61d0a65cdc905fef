package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// CheckoutSessionsTotal counts checkout-session creation attempts by
	// result: created, rejected, gateway_error, error.
	CheckoutSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mono_gateway",
			Subsystem: "checkout",
			Name:      "sessions_total",
			Help:      "Total number of checkout session requests",
		},
		[]string{"result"},
	)

	// NotificationsTotal counts processed payment callbacks by outcome:
	// skipped, dispatched, failed.
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mono_gateway",
			Subsystem: "notify",
			Name:      "notifications_total",
			Help:      "Total number of payment callback notifications",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(CheckoutSessionsTotal, NotificationsTotal)
}
