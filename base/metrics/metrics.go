package metrics

import (
	"app/base/mqueue"
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaConnectionErrorCnt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Help:      "Counter vector measuring Kafka connection issues when trying to read or write a message",
		Namespace: "crm_engine",
		Subsystem: "core",
		Name:      "kafka_connection_errors",
	}, []string{"type"})

	EngineVersion = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Help:      "CRM engine deployment information",
		Namespace: "crm_engine",
		Subsystem: "core",
		Name:      "info",
	}, []string{"version"})

	ENGINEVERSION = "v0.4.2"
)

func init() {
	if os.Getenv("KAFKA_ADDRESS") != "" {
		prometheus.MustRegister(KafkaConnectionErrorCnt)
	}
	prometheus.MustRegister(EngineVersion)
	EngineVersion.WithLabelValues(ENGINEVERSION).Set(1)
}

func Configure() {
	if os.Getenv("KAFKA_ADDRESS") != "" {
		mqueue.SetKafkaErrorReadCnt(KafkaConnectionErrorCnt.WithLabelValues("read"))
		mqueue.SetKafkaErrorWriteCnt(KafkaConnectionErrorCnt.WithLabelValues("write"))
	}
}
