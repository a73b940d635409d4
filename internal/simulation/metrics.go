package simulation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vyrodovalexey/gildedrose/internal/model"
)

const variantLabel = "variant"

// Recorder publishes inventory state as Prometheus metrics.
type Recorder struct {
	daysAdvanced prometheus.Counter
	items        *prometheus.GaugeVec
	expired      *prometheus.GaugeVec
	qualitySum   *prometheus.GaugeVec
}

// NewRecorder registers the inventory metrics on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		daysAdvanced: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "gildedrose_days_advanced_total",
				Help: "Total number of nightly updates applied",
			},
		),
		items: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gildedrose_items",
				Help: "Number of items in stock",
			},
			[]string{variantLabel},
		),
		expired: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gildedrose_items_expired",
				Help: "Number of items past their sell-in date",
			},
			[]string{variantLabel},
		),
		qualitySum: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gildedrose_quality_sum",
				Help: "Sum of item quality",
			},
			[]string{variantLabel},
		),
	}
}

// DayAdvanced counts one applied update.
func (r *Recorder) DayAdvanced() {
	r.daysAdvanced.Inc()
}

// Observe replaces the per-variant gauges with the state of items.
func (r *Recorder) Observe(items []model.Item) {
	counts := make(map[model.Variant]int, 4)
	expired := make(map[model.Variant]int, 4)
	quality := make(map[model.Variant]int, 4)

	for _, item := range items {
		v := item.Variant()
		counts[v]++
		quality[v] += item.Quality
		if item.Expired() {
			expired[v]++
		}
	}

	for _, v := range model.Variants() {
		label := v.String()
		r.items.WithLabelValues(label).Set(float64(counts[v]))
		r.expired.WithLabelValues(label).Set(float64(expired[v]))
		r.qualitySum.WithLabelValues(label).Set(float64(quality[v]))
	}
}
