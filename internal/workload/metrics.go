package workload

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Ops        *prometheus.CounterVec
	TreeSize   prometheus.Gauge
	TreeHeight prometheus.Gauge
}

// NewMetrics registers the workload metrics with reg.
func NewMetrics(reg prometheus.Registerer, labels prometheus.Labels) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bst_ops_total",
			Help:        "number of tree operations performed, by operation",
			ConstLabels: labels,
		}, []string{"op"}),
		TreeSize: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "bst_tree_size",
			Help:        "number of entries in the tree",
			ConstLabels: labels,
		}),
		TreeHeight: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "bst_tree_height",
			Help:        "nodes on the longest root-to-leaf path",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) op(name string) {
	if m == nil {
		return
	}
	m.Ops.WithLabelValues(name).Inc()
}

func (m *Metrics) shape(size, height int) {
	if m == nil {
		return
	}
	m.TreeSize.Set(float64(size))
	m.TreeHeight.Set(float64(height))
}
