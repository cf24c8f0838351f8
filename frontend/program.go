package frontend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/fndecor/syntax"
)

// Options holds the compiler options a program is built with
type Options struct {
	NoUnusedLocals bool
	Logger         *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Program is an immutable set of source files reachable from the root names
type Program struct {
	rootNames []string
	options   *Options
	host      Host
	files     map[string]*syntax.SourceFile
	order     []string
	missing   []string
}

// NewProgram loads the root files and every file reachable through relative imports.
// Files that cannot be found are recorded but do not fail the program.
func NewProgram(ctx context.Context, rootNames []string, options *Options, host Host) (*Program, error) {
	if options == nil {
		options = &Options{}
	}
	ret := &Program{
		rootNames: append([]string{}, rootNames...),
		options:   options,
		host:      host,
		files:     map[string]*syntax.SourceFile{},
	}
	queue := append([]string{}, rootNames...)
	visited := map[string]bool{}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, err := host.SourceFile(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load %v: %w", name, err)
		}
		if file == nil {
			ret.missing = append(ret.missing, name)
			options.logger().Debug("source file not found", slog.String("file", name))
			continue
		}
		ret.files[name] = file
		ret.order = append(ret.order, name)
		for _, specifier := range ImportSpecifiers(file) {
			if resolved, ok := ResolveModule(ctx, host, name, Unquote(specifier.Text())); ok && !visited[resolved] {
				queue = append(queue, resolved)
			}
		}
	}
	return ret, nil
}

// RootNames returns the names the program was created from
func (p *Program) RootNames() []string {
	return p.rootNames
}

func (p *Program) Options() *Options {
	return p.options
}

func (p *Program) Host() Host {
	return p.host
}

// SourceFile returns a loaded file or nil
func (p *Program) SourceFile(fileName string) *syntax.SourceFile {
	if p == nil {
		return nil
	}
	return p.files[fileName]
}

// SourceFiles returns loaded files in load order, roots first
func (p *Program) SourceFiles() []*syntax.SourceFile {
	result := make([]*syntax.SourceFile, 0, len(p.order))
	for _, name := range p.order {
		result = append(result, p.files[name])
	}
	return result
}

// IsRoot reports whether fileName is one of the root names
func (p *Program) IsRoot(fileName string) bool {
	for _, name := range p.rootNames {
		if name == fileName {
			return true
		}
	}
	return false
}

// Missing returns root or imported files that could not be found
func (p *Program) Missing() []string {
	return p.missing
}
