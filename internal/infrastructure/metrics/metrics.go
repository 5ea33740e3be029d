package metrics

import (
	"context"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// averageReadTimeout bounds the store read done on each scrape.
const averageReadTimeout = 2 * time.Second

// Metrics holds the domain Prometheus metrics. It implements usecase.MetricsRecorder.
type Metrics struct {
	AssetsListsSaved    prometheus.Counter
	AssetsListsRejected *prometheus.CounterVec
	AssetsPerList       prometheus.Histogram
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AssetsListsSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "goassets_assets_lists_saved_total",
			Help: "Total number of assets lists saved",
		}),
		AssetsListsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goassets_assets_lists_rejected_total",
				Help: "Total number of rejected assets list saves by reason",
			},
			[]string{"reason"},
		),
		AssetsPerList: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "goassets_assets_per_list",
			Help:    "Number of assets in each saved list",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 500, 1000},
		}),
	}
}

// AssetsListSaved records a successful save.
func (m *Metrics) AssetsListSaved(assets int) {
	m.AssetsListsSaved.Inc()
	m.AssetsPerList.Observe(float64(assets))
}

// AssetsListRejected records a save that did not reach the store, or failed in it.
func (m *Metrics) AssetsListRejected(reason string) {
	m.AssetsListsRejected.WithLabelValues(reason).Inc()
}

// AverageReader returns the stored average, or nil when nothing is stored.
type AverageReader func(ctx context.Context) (*float64, error)

// NewAverageInterestRateGauge registers a gauge that reads the stored average
// on every collection, so it always matches what GET /interest_rate returns.
// It reports NaN while nothing is stored or when the read fails.
func NewAverageInterestRateGauge(reg prometheus.Registerer, read AverageReader) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "goassets_average_interest_rate",
			Help: "Average interest rate of the stored assets list",
		},
		func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), averageReadTimeout)
			defer cancel()

			avg, err := read(ctx)
			if err != nil || avg == nil {
				return math.NaN()
			}
			return *avg
		},
	)
}
