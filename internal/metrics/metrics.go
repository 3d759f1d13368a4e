// Package metrics exposes Prometheus counters for the tally and pricing endpoints.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and multiple apps never collide
// on the global default registry. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	pizzasAggregated prometheus.Counter
	groupsReported   prometheus.Counter
	ordersPriced     prometheus.Counter
	ordersRejected   *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pizzasAggregated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toppings_pizzas_aggregated_total",
			Help: "Pizzas processed by the topping tally.",
		}),
		groupsReported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "toppings_groups_reported_total",
			Help: "Topping groups returned to callers.",
		}),
		ordersPriced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orders_priced_total",
			Help: "Orders priced successfully.",
		}),
		ordersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_rejected_total",
			Help: "Orders rejected during pricing, by reason.",
		}, []string{"reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests served, by method and status code.",
		}, []string{"method", "status"}),
	}

	r.registry.MustRegister(
		r.pizzasAggregated,
		r.groupsReported,
		r.ordersPriced,
		r.ordersRejected,
		r.httpRequests,
	)
	return r
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveAggregation records one tally run.
func (r *Recorder) ObserveAggregation(pizzas, groups int) {
	if r == nil {
		return
	}
	r.pizzasAggregated.Add(float64(pizzas))
	r.groupsReported.Add(float64(groups))
}

// ObserveOrder records a priced order.
func (r *Recorder) ObserveOrder() {
	if r == nil {
		return
	}
	r.ordersPriced.Inc()
}

// ObserveRejectedOrder records an order that failed validation.
func (r *Recorder) ObserveRejectedOrder(reason string) {
	if r == nil {
		return
	}
	r.ordersRejected.WithLabelValues(reason).Inc()
}

// ObserveRequest records a completed HTTP request.
func (r *Recorder) ObserveRequest(method string, status int) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
