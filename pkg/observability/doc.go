/*
Package observability turns catalog hooks into Prometheus metrics.

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	cat, err := objects.New(objects.WithHooks(metrics.Hooks()))

Every normalization increments objects_normalizations_total, labeled by type
and outcome, and observes its duration in objects_normalization_duration_seconds.
*/
package observability
