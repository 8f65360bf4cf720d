package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "handbook"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	validationDuration prom.Histogram
	runs               *prom.CounterVec
	issues             *prom.CounterVec
	pages              prom.Gauge
	renders            *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		validationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "validation_duration_seconds",
			Help:      "Duration of a full load and validate run",
			Buckets:   prom.DefBuckets,
		}),
		runs: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_runs_total",
			Help:      "Validation runs by outcome",
		}, []string{"outcome"}),
		issues: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_issues_total",
			Help:      "Reported issues by rule and severity",
		}, []string{"rule", "severity"}),
		pages: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_pages",
			Help:      "Number of pages linked from the sidebar in the last run",
		}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_results_total",
			Help:      "Render results by success/failure",
		}, []string{"result"}),
	}
	reg.MustRegister(pr.validationDuration, pr.runs, pr.issues, pr.pages, pr.renders)
	return pr
}

func (p *PrometheusRecorder) ObserveValidationDuration(d time.Duration) {
	p.validationDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRun(outcome Outcome) {
	p.runs.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncIssue(rule, severity string) {
	p.issues.WithLabelValues(rule, severity).Inc()
}

func (p *PrometheusRecorder) SetPages(n int) { p.pages.Set(float64(n)) }

func (p *PrometheusRecorder) IncRender(success bool) {
	result := "success"
	if !success {
		result = "failed"
	}
	p.renders.WithLabelValues(result).Inc()
}
