package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"route", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"route"},
	)
	RegistrationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_registrations_total",
			Help: "Total number of registered users.",
		},
	)
	ApplicationsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_applications_total",
			Help: "Total number of submitted job applications.",
		},
	)
	MessagesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_messages_total",
			Help: "Total number of sent chat messages.",
		},
	)
	EntityCountGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "api_entity_rows",
			Help: "Current number of rows per entity table.",
		},
		[]string{"entity"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RegistrationsCounter)
	prometheus.MustRegister(ApplicationsCounter)
	prometheus.MustRegister(MessagesCounter)
	prometheus.MustRegister(EntityCountGauge)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
