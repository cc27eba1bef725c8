package table

import (
	"github.com/prometheus/client_golang/prometheus"
)

var sortsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "highscore_sorts_total",
	Help: "Column sorts by declared type and whether the typed order was used or fell back to strings.",
}, []string{"type", "order"})

// RegisterMetrics exposes the table counters on reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(sortsTotal)
}
