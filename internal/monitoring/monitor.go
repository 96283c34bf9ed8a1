// Package monitoring collects operational metrics for the reconciliation
// engine on a private prometheus registry. All recording methods are nil-safe
// so the core packages can run uninstrumented.
package monitoring

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

// Monitor holds the engine's metric collectors.
type Monitor struct {
	registry *prometheus.Registry

	conversions        *prometheus.CounterVec
	conversionFailures *prometheus.CounterVec
	deductions         prometheus.Counter
	archiveTransitions *prometheus.CounterVec
	aggregationRuns    prometheus.Counter
	itemsEmitted       prometheus.Counter
	aggregationWarns   prometheus.Counter
}

// NewMonitor creates a monitor with all collectors registered.
func NewMonitor() *Monitor {
	registry := prometheus.NewRegistry()

	m := &Monitor{
		registry: registry,
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "larder_unit_conversions_total",
				Help: "Unit conversions attempted by the engine",
			},
			[]string{"component"},
		),
		conversionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "larder_unit_conversion_failures_total",
				Help: "Unit conversions rejected as incompatible",
			},
			[]string{"component"},
		),
		deductions: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "larder_inventory_deductions_total",
				Help: "Deductions applied to inventory records",
			},
		),
		archiveTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "larder_inventory_archive_transitions_total",
				Help: "Inventory records moved between active and archived",
			},
			[]string{"direction"},
		),
		aggregationRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "larder_shopping_aggregations_total",
				Help: "Shopping list aggregation runs",
			},
		),
		itemsEmitted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "larder_shopping_items_emitted_total",
				Help: "Shopping list items emitted by aggregation",
			},
		),
		aggregationWarns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "larder_shopping_aggregation_warnings_total",
				Help: "Contributions dropped from a sum due to incompatible units",
			},
		),
	}

	registry.MustRegister(
		m.conversions,
		m.conversionFailures,
		m.deductions,
		m.archiveTransitions,
		m.aggregationRuns,
		m.itemsEmitted,
		m.aggregationWarns,
	)

	return m
}

// RecordConversion counts one conversion attempt by the named component.
func (m *Monitor) RecordConversion(component string, failed bool) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(component).Inc()
	if failed {
		m.conversionFailures.WithLabelValues(component).Inc()
	}
}

// RecordDeduction counts one applied inventory deduction.
func (m *Monitor) RecordDeduction() {
	if m == nil {
		return
	}
	m.deductions.Inc()
}

// RecordArchiveTransition counts a lifecycle transition, direction is
// "archived" or "unarchived".
func (m *Monitor) RecordArchiveTransition(direction string) {
	if m == nil {
		return
	}
	m.archiveTransitions.WithLabelValues(direction).Inc()
}

// RecordAggregation counts one aggregation run and its outcome sizes.
func (m *Monitor) RecordAggregation(itemsEmitted, warnings int) {
	if m == nil {
		return
	}
	m.aggregationRuns.Inc()
	m.itemsEmitted.Add(float64(itemsEmitted))
	m.aggregationWarns.Add(float64(warnings))
}

// MetricValue is one gathered sample, flattened for rendering.
type MetricValue struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers the registry and returns counter values sorted by name,
// for display surfaces that are not scraping endpoints.
func (m *Monitor) Snapshot() ([]MetricValue, error) {
	if m == nil {
		return nil, nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var values []MetricValue
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := ""
			for _, pair := range metric.GetLabel() {
				if labels != "" {
					labels += ","
				}
				labels += pair.GetName() + "=" + pair.GetValue()
			}
			value := 0.0
			if counter := metric.GetCounter(); counter != nil {
				value = counter.GetValue()
			}
			values = append(values, MetricValue{
				Name:   family.GetName(),
				Labels: labels,
				Value:  value,
			})
		}
	}

	sort.Slice(values, func(i, j int) bool {
		if values[i].Name != values[j].Name {
			return values[i].Name < values[j].Name
		}
		return values[i].Labels < values[j].Labels
	})
	return values, nil
}
