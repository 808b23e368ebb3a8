package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts pipeline activity served through the API.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	RowsDroppedTotal prometheus.Counter
}

// NewMetrics registers the API metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AnalysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "autoscatter_analyses_total",
			Help: "Analysis runs served, by outcome.",
		}, []string{"status"}),
		RowsDroppedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "autoscatter_rows_dropped_total",
			Help: "Rows dropped during cleansing across all runs.",
		}),
	}
}
