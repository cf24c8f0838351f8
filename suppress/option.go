package suppress

import (
	"log/slog"

	"github.com/viant/fndecor/telemetry"
)

// Option configures a Plugin
type Option func(*Plugin)

// WithScope selects where decorator-related diagnostics are dropped
func WithScope(scope Scope) Option {
	return func(p *Plugin) {
		if scope != "" {
			p.scope = scope
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics counts dropped diagnostics per rule
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(p *Plugin) {
		p.metrics = metrics
	}
}
