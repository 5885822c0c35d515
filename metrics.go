package cartes

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cartes_client",
			Name:      "requests_total",
			Help:      "HTTP requests that received a status, by method and code.",
		},
		[]string{"method", "code"},
	)

	transportFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cartes_client",
			Name:      "transport_failures_total",
			Help:      "Requests that failed before any HTTP status was received.",
		},
		[]string{"method"},
	)
)

// metricsTransport counts every outbound request. Installed as the
// outermost transport wrapper by New.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		transportFailuresTotal.WithLabelValues(req.Method).Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// instrumentTransport wraps the HTTP client's transport so every
// request is counted, regardless of which options were applied.
func (c *Client) instrumentTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &metricsTransport{base: base}
}
