package ringbuffer

import (
	"github.com/prometheus/client_golang/prometheus"
)

// bufferMetrics mirrors Statistics as Prometheus collectors.
type bufferMetrics struct {
	registerer prometheus.Registerer

	puts       prometheus.Counter
	pulls      prometheus.Counter
	overwrites prometheus.Counter
	resets     prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

func newBufferMetrics(registerer prometheus.Registerer, name string) (*bufferMetrics, error) {
	labels := prometheus.Labels{"buffer": name}
	m := &bufferMetrics{
		registerer: registerer,
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Name:        "puts_total",
			ConstLabels: labels,
			Help:        "Total number of items written to the ring buffer",
		}),
		pulls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Name:        "pulls_total",
			ConstLabels: labels,
			Help:        "Total number of items read from the ring buffer",
		}),
		overwrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Name:        "overwrites_total",
			ConstLabels: labels,
			Help:        "Total number of items discarded because the ring buffer was full",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Name:        "resets_total",
			ConstLabels: labels,
			Help:        "Total number of ring buffer resets",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of items in the ring buffer",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Name:        "utilization",
			ConstLabels: labels,
			Help:        "Ring buffer utilization (0.0 to 1.0)",
		}),
	}

	registered := make([]prometheus.Collector, 0, len(m.collectors()))
	for _, c := range m.collectors() {
		if err := registerer.Register(c); err != nil {
			for _, r := range registered {
				registerer.Unregister(r)
			}
			return nil, err
		}
		registered = append(registered, c)
	}

	return m, nil
}

func (m *bufferMetrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{m.puts, m.pulls, m.overwrites, m.resets, m.size, m.utilization}
}

func (m *bufferMetrics) recordPut(size, capacity int, overwrote bool) {
	m.puts.Inc()
	if overwrote {
		m.overwrites.Inc()
	}
	m.updateSize(size, capacity)
}

func (m *bufferMetrics) recordPull(size, capacity int) {
	m.pulls.Inc()
	m.updateSize(size, capacity)
}

func (m *bufferMetrics) recordReset(capacity int) {
	m.resets.Inc()
	m.updateSize(0, capacity)
}

func (m *bufferMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity))
}

func (m *bufferMetrics) unregister() {
	for _, c := range m.collectors() {
		m.registerer.Unregister(c)
	}
}
