package frontend

import (
	"context"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/fndecor/syntax"
)

// Host supplies source files to a Program
type Host interface {
	// SourceFile returns the parsed file, or nil without error when the file does not exist
	SourceFile(ctx context.Context, fileName string) (*syntax.SourceFile, error)
	// FileExists reports whether fileName can be loaded
	FileExists(ctx context.Context, fileName string) bool
}

// FileHost loads files through an afs storage service; fileName can be any afs URL
type FileHost struct {
	fs     afs.Service
	parser *Parser
}

// NewFileHost creates a file host
func NewFileHost(opts ...FileHostOption) *FileHost {
	ret := &FileHost{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.parser == nil {
		ret.parser = NewParser()
	}
	return ret
}

func (h *FileHost) SourceFile(ctx context.Context, fileName string) (*syntax.SourceFile, error) {
	if !h.FileExists(ctx, fileName) {
		return nil, nil
	}
	data, err := h.fs.DownloadWithURL(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", fileName, err)
	}
	return h.parser.Parse(ctx, fileName, string(data))
}

func (h *FileHost) FileExists(ctx context.Context, fileName string) bool {
	ok, err := h.fs.Exists(ctx, fileName)
	return err == nil && ok
}

// MemoryHost serves files from memory. Parsed files are memoized per version.
type MemoryHost struct {
	parser  *Parser
	mux     sync.RWMutex
	files   map[string]string
	parsed  map[string]*syntax.SourceFile
	version int
}

// NewMemoryHost creates a memory host seeded with files
func NewMemoryHost(files map[string]string, opts ...ParserOption) *MemoryHost {
	ret := &MemoryHost{
		parser: NewParser(opts...),
		files:  map[string]string{},
		parsed: map[string]*syntax.SourceFile{},
	}
	for name, text := range files {
		ret.files[name] = text
	}
	return ret
}

// Put adds or replaces a file
func (h *MemoryHost) Put(fileName, text string) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.files[fileName] = text
	delete(h.parsed, fileName)
	h.version++
}

// Version returns a counter incremented on every change
func (h *MemoryHost) Version() int {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.version
}

func (h *MemoryHost) SourceFile(ctx context.Context, fileName string) (*syntax.SourceFile, error) {
	h.mux.RLock()
	text, ok := h.files[fileName]
	parsed := h.parsed[fileName]
	h.mux.RUnlock()
	if !ok {
		return nil, nil
	}
	if parsed != nil {
		return parsed, nil
	}
	parsed, err := h.parser.Parse(ctx, fileName, text)
	if err != nil {
		return nil, err
	}
	h.mux.Lock()
	h.parsed[fileName] = parsed
	h.mux.Unlock()
	return parsed, nil
}

func (h *MemoryHost) FileExists(_ context.Context, fileName string) bool {
	h.mux.RLock()
	defer h.mux.RUnlock()
	_, ok := h.files[fileName]
	return ok
}
