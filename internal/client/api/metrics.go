package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors for outbound gateway traffic.
type Metrics struct {
	inFlight prometheus.Gauge
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by another client are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gourmet_client_in_flight_requests",
			Help: "In-flight requests to the recipe API.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gourmet_client_requests_total",
				Help: "Total number of requests to the recipe API.",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gourmet_client_request_duration_seconds",
				Help:    "Recipe API request latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	var err error
	if m.inFlight, err = register(reg, m.inFlight); err != nil {
		return nil, err
	}
	if m.requests, err = register(reg, m.requests); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Wrap returns a RoundTripper that records every request made through next.
func (m *Metrics) Wrap(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &instrumentedTransport{next: next, metrics: m}
}

type instrumentedTransport struct {
	next    http.RoundTripper
	metrics *Metrics
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	route := routeOf(req.URL.Path)

	t.metrics.inFlight.Inc()
	defer t.metrics.inFlight.Dec()

	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	t.metrics.duration.WithLabelValues(req.Method, route, status).Observe(time.Since(start).Seconds())
	t.metrics.requests.WithLabelValues(req.Method, route, status).Inc()

	return resp, err
}

// routeOf replaces user names and recipe ids in a path so that label
// cardinality stays bounded.
func routeOf(p string) string {
	segs := strings.Split(strings.Trim(p, "/"), "/")
	if len(segs) >= 2 {
		switch segs[0] {
		case "users":
			segs[1] = "{username}"
		case "recipes":
			segs[1] = "{id}"
		}
	}
	return "/" + strings.Join(segs, "/")
}
