package service

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records listing outcomes. A nil *Metrics records nothing.
type Metrics struct {
	listings *prometheus.CounterVec
	duration prometheus.Histogram
	rows     prometheus.Histogram
}

// NewMetrics creates listing metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		listings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "board_listings_total",
				Help: "Total number of listing requests by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "board_listing_duration_seconds",
			Help:    "Time spent assembling a listing page.",
			Buckets: prometheus.DefBuckets,
		}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "board_listing_rows",
			Help:    "Number of rows returned per listing page.",
			Buckets: prometheus.LinearBuckets(0, 5, 11),
		}),
	}

	for _, c := range []prometheus.Collector{m.listings, m.duration, m.rows} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeListing(res *PageResult, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	switch {
	case err == nil:
		m.listings.WithLabelValues("ok").Inc()
		m.rows.Observe(float64(len(res.Rows)))
	case errors.Is(err, ErrInvalidPage):
		m.listings.WithLabelValues("invalid_page").Inc()
	default:
		m.listings.WithLabelValues("store_error").Inc()
	}
	m.duration.Observe(elapsed.Seconds())
}
