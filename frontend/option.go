package frontend

import (
	"log/slog"

	"github.com/viant/afs"
)

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithMaxFileSize sets the largest source size the parser accepts
func WithMaxFileSize(bytes int) ParserOption {
	return func(p *Parser) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// WithParserLogger sets the parser logger
func WithParserLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// FileHostOption configures a FileHost
type FileHostOption func(*FileHost)

// WithFileService sets the storage service used to read files
func WithFileService(fs afs.Service) FileHostOption {
	return func(h *FileHost) {
		h.fs = fs
	}
}

// WithParser sets the parser used to build source files
func WithParser(parser *Parser) FileHostOption {
	return func(h *FileHost) {
		h.parser = parser
	}
}

// ServiceOption configures a Service
type ServiceOption func(*Service)

// WithNoUnusedLocals reports unused imports as errors instead of suggestions
func WithNoUnusedLocals(enabled bool) ServiceOption {
	return func(s *Service) {
		s.noUnusedLocals = enabled
	}
}

// WithServiceLogger sets the service logger
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
