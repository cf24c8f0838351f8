package transform

import (
	"context"

	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/syntax"
)

// PatchedHost serves rewritten files from a session cache and delegates everything else.
// Delegated results are not cached.
type PatchedHost struct {
	cache *Cache
	host  frontend.Host
}

// NewPatchedHost wraps host
func NewPatchedHost(cache *Cache, host frontend.Host) *PatchedHost {
	return &PatchedHost{cache: cache, host: host}
}

func (h *PatchedHost) SourceFile(ctx context.Context, fileName string) (*syntax.SourceFile, error) {
	if unit, ok := h.cache.Get(fileName); ok {
		return unit.File, nil
	}
	if h.host == nil {
		return nil, nil
	}
	return h.host.SourceFile(ctx, fileName)
}

func (h *PatchedHost) FileExists(ctx context.Context, fileName string) bool {
	if _, ok := h.cache.Get(fileName); ok {
		return true
	}
	return h.host != nil && h.host.FileExists(ctx, fileName)
}
