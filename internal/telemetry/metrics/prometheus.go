package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns a registry with build info, process and Go runtime
// (gc and scheduler) collectors, plus the given extra collectors. Nil extras
// are skipped so optional collectors can be passed as is.
func NewRegistry(extraCollectors ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC, collectors.MetricsScheduler),
		),
	)
	for _, c := range extraCollectors {
		if c != nil {
			reg.MustRegister(c)
		}
	}
	return reg
}
