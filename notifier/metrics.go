package notifier

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	deliveredNotificationsCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm_engine",
		Subsystem: "notifier",
		Name:      "delivered_notifications",
		Help:      "How many notifications were delivered, per event type",
	}, []string{"type"})
)

func init() {
	prometheus.MustRegister(deliveredNotificationsCnt)
}
