// Package metrics exposes a small metrics facade with a Datadog statsd
// implementation and a no-op fallback when metrics are disabled.
package metrics

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/raywall/inventory-quick-service/pkg/config"
)

// Provider is the metrics surface the handlers use.
type Provider interface {
	Count(name string, value float64, tags []string) error
	Gauge(name string, value float64, tags []string) error
	Histogram(name string, value float64, tags []string) error
}

// NoopProvider drops every metric. Used when Datadog is disabled.
type NoopProvider struct{}

func (n *NoopProvider) Count(string, float64, []string) error     { return nil }
func (n *NoopProvider) Gauge(string, float64, []string) error     { return nil }
func (n *NoopProvider) Histogram(string, float64, []string) error { return nil }

// DatadogProvider adapts the official Datadog client to Provider.
type DatadogProvider struct {
	client *statsd.Client
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// Setup picks the provider based on configuration.
func Setup(cfg config.MetricsConf) (Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Datadog.Namespace),
	}

	client, err := statsd.New(cfg.Datadog.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("metrics: connect to datadog statsd: %w", err)
	}

	return &DatadogProvider{client: client}, nil
}
