package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes pool activity counters.
type Metrics struct {
	PoolsCreated   prometheus.Counter
	PoolsFinalized prometheus.Counter
	Swaps          *prometheus.CounterVec
	Joins          *prometheus.CounterVec
	Exits          *prometheus.CounterVec
}

var sharedMetrics *Metrics

// NewMetrics returns the process-wide metrics set. Prometheus registration
// is global, so repeated keepers share one instance.
func NewMetrics() *Metrics {
	if sharedMetrics != nil {
		return sharedMetrics
	}
	sharedMetrics = &Metrics{
		PoolsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comet_pools_created_total",
			Help: "Total number of pools created",
		}),
		PoolsFinalized: promauto.NewCounter(prometheus.CounterOpts{
			Name: "comet_pools_finalized_total",
			Help: "Total number of pools finalized",
		}),
		Swaps: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comet_swaps_total",
			Help: "Total number of swaps executed",
		}, []string{"pool_id", "token_in", "token_out"}),
		Joins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comet_joins_total",
			Help: "Total number of proportional joins",
		}, []string{"pool_id"}),
		Exits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "comet_exits_total",
			Help: "Total number of proportional exits",
		}, []string{"pool_id"}),
	}
	return sharedMetrics
}
