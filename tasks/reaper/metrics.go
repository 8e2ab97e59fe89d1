package reaper

import (
	"app/base/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	deletedInactiveCustomersCnt = prometheus.NewCounter(prometheus.CounterOpts{
		Help:      "How many inactive customers were deleted",
		Namespace: "crm_engine",
		Subsystem: "reaper",
		Name:      "deleted_inactive_customers",
	})
	prunedDeletedCustomersCnt = prometheus.NewCounter(prometheus.CounterOpts{
		Help:      "How many deleted_customer ledger rows were pruned",
		Namespace: "crm_engine",
		Subsystem: "reaper",
		Name:      "pruned_deleted_customers",
	})
)

func Metrics() *push.Pusher {
	registry := prometheus.NewRegistry()
	registry.MustRegister(deletedInactiveCustomersCnt, prunedDeletedCustomersCnt)

	return push.New(utils.Getenv("PROMETHEUS_PUSHGATEWAY", "pushgateway"), "reaper").Gatherer(registry)
}
