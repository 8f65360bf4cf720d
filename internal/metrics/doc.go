// Package metrics exposes validation and render metrics.
//
// Components receive a Recorder and default to NoopRecorder, so call sites
// never check for nil. The watch command swaps in a PrometheusRecorder when
// a metrics address is configured and serves it through HTTPHandler.
package metrics
