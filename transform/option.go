package transform

import (
	"log/slog"

	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/telemetry"
)

// Option configures a Session
type Option func(*Session)

// WithParamPrefix sets the prefix of synthetic parameter names, "arg" by default
func WithParamPrefix(prefix string) Option {
	return func(s *Session) {
		s.paramPrefix = prefix
	}
}

// WithDefaultType sets the type given to untyped parameters, "any" by default
func WithDefaultType(name string) Option {
	return func(s *Session) {
		s.defaultType = name
	}
}

// WithLogger sets the session logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParser sets the parser used to re-parse rewritten text
func WithParser(parser *frontend.Parser) Option {
	return func(s *Session) {
		s.parser = parser
	}
}

// WithMetrics records rewrite counters
func WithMetrics(metrics *telemetry.Metrics) Option {
	return func(s *Session) {
		s.metrics = metrics
	}
}
