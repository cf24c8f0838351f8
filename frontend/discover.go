package frontend

import (
	"context"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// DefaultExtensions lists the source extensions discovered by default
var DefaultExtensions = []string{".ts", ".tsx"}

// DefaultExclude lists directory names skipped by default
var DefaultExclude = []string{"node_modules", ".git", "dist", "build"}

// Matcher decides whether a visited entry is part of the project
type Matcher func(info os.FileInfo) bool

// SourceFiles matches TypeScript sources with the given extensions, skipping declaration files
// and entries whose name matches one of the exclude patterns.
func SourceFiles(extensions, exclude []string) Matcher {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return func(info os.FileInfo) bool {
		name := info.Name()
		for _, pattern := range exclude {
			if matched, _ := path.Match(pattern, name); matched || pattern == name {
				return false
			}
		}
		if info.IsDir() {
			return true
		}
		if strings.HasSuffix(name, ".d.ts") {
			return false
		}
		for _, ext := range extensions {
			if strings.HasSuffix(name, ext) {
				return true
			}
		}
		return false
	}
}

// Discover walks root and returns the URLs of every matching file in lexical order
func Discover(ctx context.Context, fs afs.Service, root string, match Matcher) ([]string, error) {
	var result []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if !match(info) {
			return false, nil
		}
		if info.IsDir() {
			return true, nil
		}
		result = append(result, url.Join(url.Join(baseURL, parent), info.Name()))
		return true, nil
	}
	if err := fs.Walk(ctx, root, visitor); err != nil {
		return nil, err
	}
	sort.Strings(result)
	return result, nil
}
