package project

import (
	"context"
	"encoding/json"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// ConfigNames lists configuration file names looked up in the project root, in priority order
var ConfigNames = []string{"fndecor.yaml", "fndecor.yml", "fndecor.toml"}

// Project describes a detected TypeScript project
type Project struct {
	Root string // Root location of the project
	Type string // typescript, javascript, git or unknown
	Name string // package name, or the root directory name

	// Config is the location of the project configuration file, empty when none exists
	Config string
}

// Detector identifies project roots by marker files
type Detector struct {
	fs      afs.Service
	markers []string
}

// New creates a detector; a nil fs uses the default storage service
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			"tsconfig.json", // TypeScript projects
			"package.json",  // JavaScript/Node projects
			".git",          // Generic VCS marker
		},
	}
}

// Detect searches up from dir for project markers; without a marker dir itself is the root
func (d *Detector) Detect(ctx context.Context, dir string) (*Project, error) {
	dir = strings.TrimSuffix(dir, "/")
	root, kind, err := d.findRoot(ctx, dir)
	if err != nil {
		return nil, err
	}
	ret := &Project{Root: root, Type: kind}
	if root == "" {
		ret.Root = dir
		ret.Type = "unknown"
	}
	ret.Name = d.packageName(ctx, ret.Root)
	for _, name := range ConfigNames {
		candidate := url.Join(ret.Root, name)
		if ok, _ := d.fs.Exists(ctx, candidate); ok {
			ret.Config = candidate
			break
		}
	}
	return ret, nil
}

func (d *Detector) findRoot(ctx context.Context, dir string) (string, string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", "", err
		}
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, url.Join(dir, marker)); ok {
				return dir, projectType(marker), nil
			}
		}
		next, ok := parent(dir)
		if !ok {
			return "", "", nil
		}
		dir = next
	}
}

// packageName reads the name field of package.json, falling back to the directory name
func (d *Detector) packageName(ctx context.Context, root string) string {
	fallback := path.Base(pathOf(root))
	data, err := d.fs.DownloadWithURL(ctx, url.Join(root, "package.json"))
	if err != nil {
		return fallback
	}
	manifest := struct {
		Name string `json:"name"`
	}{}
	if err = json.Unmarshal(data, &manifest); err != nil || manifest.Name == "" {
		return fallback
	}
	return manifest.Name
}

func projectType(marker string) string {
	switch marker {
	case "tsconfig.json":
		return "typescript"
	case "package.json":
		return "javascript"
	case ".git":
		return "git"
	}
	return "unknown"
}

// parent returns the enclosing directory, keeping any scheme and host
func parent(location string) (string, bool) {
	prefix := ""
	if index := strings.Index(location, "://"); index != -1 {
		rest := location[index+3:]
		slash := strings.Index(rest, "/")
		if slash == -1 {
			return "", false
		}
		prefix = location[:index+3+slash]
		location = rest[slash:]
	}
	if location == "/" || location == "" || location == "." {
		return "", false
	}
	return prefix + path.Dir(location), true
}

func pathOf(location string) string {
	if index := strings.Index(location, "://"); index != -1 {
		rest := location[index+3:]
		if slash := strings.Index(rest, "/"); slash != -1 {
			return rest[slash:]
		}
		return "/"
	}
	return location
}
