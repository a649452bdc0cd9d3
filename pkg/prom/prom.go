package prom

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	xhttp "github.com/zha7nea/callcenter/pkg/http"
	"github.com/zha7nea/callcenter/pkg/logger"
)

const (
	SystemHTTP      = "http"
	SystemAuth      = "auth"
	SystemCustomers = "customers"
)
const (
	MetricRequestsTotal       = "requests_total"
	MetricRequestDuration     = "request_duration_seconds"
	MetricAuthFailures        = "failures_total"
	MetricCascadeDeletedCalls = "cascade_deleted_calls_total"
)

var lockCreateMetricLock = &sync.Mutex{}
var namespace = "none"

var MetricSystemEnabled = false

var MetricCollectionCounters = make(map[string]prometheus.Counter)
var MetricCollectionCounterVec = make(map[string]*prometheus.CounterVec)
var MetricCollectionHistogramVec = make(map[string]*prometheus.HistogramVec)

var defaultLabels prometheus.Labels

// Create registers every metric of the service on the default registry.
// Until it has run, all Add/Inc/Observe helpers are no-ops.
func Create(host string, env string, nameSpace string) error {
	return CreateWithRegisterer(prometheus.DefaultRegisterer, host, env, nameSpace)
}

func CreateWithRegisterer(reg prometheus.Registerer, host string, env string, nameSpace string) error {
	defaultLabels = make(prometheus.Labels)
	defaultLabels["env"] = env
	defaultLabels["instance"] = host
	namespace = nameSpace

	var err error
	hasError := func(e error) {
		if err == nil && e != nil {
			err = e
		}
	}

	hasError(createCounterVec(reg, SystemHTTP, MetricRequestsTotal, "Handled HTTP requests.", []string{"method", "route", "status"}))
	hasError(createHistogramVec(reg, SystemHTTP, MetricRequestDuration, "HTTP request latency.", []string{"method", "route"}))
	hasError(createCounterVec(reg, SystemAuth, MetricAuthFailures, "Requests rejected by the auth guard.", []string{"reason"}))
	hasError(createCounter(reg, SystemCustomers, MetricCascadeDeletedCalls, "Calls removed together with their customer."))

	if err == nil {
		MetricSystemEnabled = true
	}
	return err
}

func ListenAndServer(addr string, url string) {
	hh := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	s := xhttp.CreateServer()
	s.GET(url, hh)
	logger.Info("[metrics-server] listening...", "addr", addr, "url", url)
	if err := s.ListenAndServe(addr); err != nil {
		logger.Panic("[metrics-server] http listen error", "error", err)
	}
}

func createCounter(reg prometheus.Registerer, subsystem, name, help string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounters[subsystem+name] = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: defaultLabels,
	})
	return reg.Register(MetricCollectionCounters[subsystem+name])
}

func createCounterVec(reg prometheus.Registerer, subsystem, name, help string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionCounterVec[subsystem+name] = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: defaultLabels,
	}, labels)
	return reg.Register(MetricCollectionCounterVec[subsystem+name])
}

func createHistogramVec(reg prometheus.Registerer, subsystem, name, help string, labels []string) error {
	lockCreateMetricLock.Lock()
	defer lockCreateMetricLock.Unlock()
	MetricCollectionHistogramVec[subsystem+name] = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: defaultLabels,
		Buckets:     prometheus.DefBuckets,
	}, labels)
	return reg.Register(MetricCollectionHistogramVec[subsystem+name])
}

func AddCounter(subsystem, name string, number float64) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionCounters[subsystem+name]; ok {
		v.Add(number)
		return
	}
	logger.Warn("[metrics-server] counter not found", "subsystem", subsystem, "name", name)
}

func AddCounterVec(subsystem, name string, num float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionCounterVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Add(num)
		return
	}
	logger.Warn("[metrics-server] counter vec not found", "subsystem", subsystem, "name", name)
}

func IncCounterVec(subsystem, name string, labelValues ...string) {
	AddCounterVec(subsystem, name, 1, labelValues...)
}

func AddHistogramVec(subsystem, name string, number float64, labelValues ...string) {
	if !MetricSystemEnabled {
		return
	}
	if v, ok := MetricCollectionHistogramVec[subsystem+name]; ok {
		v.WithLabelValues(labelValues...).Observe(number)
		return
	}
	logger.Warn("[metrics-server] histogram vec not found", "subsystem", subsystem, "name", name)
}

// ObserveHTTPRequest matches xhttp.ObserveFunc.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	IncCounterVec(SystemHTTP, MetricRequestsTotal, method, route, strconv.Itoa(status))
	AddHistogramVec(SystemHTTP, MetricRequestDuration, elapsed.Seconds(), method, route)
}

func IncAuthFailure(reason string) {
	IncCounterVec(SystemAuth, MetricAuthFailures, reason)
}

func AddCascadeDeletedCalls(n int64) {
	AddCounter(SystemCustomers, MetricCascadeDeletedCalls, float64(n))
}
