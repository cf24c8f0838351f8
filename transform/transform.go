package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/syntax"
	"github.com/viant/fndecor/telemetry"
)

// ErrNoProgram is returned when Transform is called without a program
var ErrNoProgram = errors.New("program was nil")

// Session owns the cache of rewritten files for one compilation
type Session struct {
	cache       *Cache
	parser      *frontend.Parser
	rewriter    *Rewriter
	logger      *slog.Logger
	metrics     *telemetry.Metrics
	paramPrefix string
	defaultType string
}

// NewSession creates a session
func NewSession(opts ...Option) *Session {
	ret := &Session{cache: NewCache(), logger: slog.Default()}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.parser == nil {
		ret.parser = frontend.NewParser(frontend.WithParserLogger(ret.logger))
	}
	ret.rewriter = NewRewriter(NewSynthesizer(ret.paramPrefix, ret.defaultType), ret.logger, ret.metrics)
	return ret
}

// Cache returns the session cache
func (s *Session) Cache() *Cache {
	return s.cache
}

// Units returns the transformed root files ordered by name
func (s *Session) Units() []*Unit {
	return s.cache.Units()
}

// Unit returns the transformed file with the given name
func (s *Session) Unit(fileName string) (*Unit, bool) {
	return s.cache.Get(fileName)
}

// Transform rewrites the decorated declarations of every root file of program and returns a
// program with the same root names and options built over a host serving the rewritten files.
// Only root files are rewritten; dependencies are served by host unchanged.
func (s *Session) Transform(ctx context.Context, program *frontend.Program, host frontend.Host) (*frontend.Program, error) {
	if program == nil {
		return nil, ErrNoProgram
	}
	if host == nil {
		host = program.Host()
	}
	for _, name := range program.RootNames() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file := program.SourceFile(name)
		if file == nil || file.Root() == nil {
			continue
		}
		if _, ok := s.cache.Get(name); ok {
			continue
		}
		unit, err := s.TransformFile(ctx, file)
		if err != nil {
			return nil, err
		}
		if err = s.cache.Put(unit); err != nil {
			return nil, err
		}
	}
	return frontend.NewProgram(ctx, program.RootNames(), program.Options(), NewPatchedHost(s.cache, host))
}

// TransformFile rewrites one file without caching it
func (s *Session) TransformFile(ctx context.Context, file *syntax.SourceFile) (*Unit, error) {
	unit := &Unit{
		FileName:     file.FileName(),
		Original:     file,
		File:         file,
		OriginalHash: file.Hash(),
		Hash:         file.Hash(),
	}
	result := s.rewriter.Rewrite(file.FileName(), file.Root())
	if result.Declarations == 0 {
		s.metrics.File("unchanged")
		return unit, nil
	}
	rewritten, err := s.parser.Parse(ctx, file.FileName(), syntax.Print(result.Root))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rewritten %v: %w", file.FileName(), err)
	}
	unit.File = rewritten
	unit.Hash = rewritten.Hash()
	unit.Declarations = result.Declarations
	unit.Warnings = result.Warnings
	s.metrics.File("rewritten")
	s.logger.Debug("transformed file",
		slog.String("file", file.FileName()),
		slog.Int("declarations", result.Declarations))
	return unit, nil
}

// Transform runs a new session over program
func Transform(ctx context.Context, program *frontend.Program, host frontend.Host, opts ...Option) (*frontend.Program, *Session, error) {
	session := NewSession(opts...)
	transformed, err := session.Transform(ctx, program, host)
	if err != nil {
		return nil, session, err
	}
	return transformed, session, nil
}
