package frontend_test

import (
	"context"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/fndecor/frontend"
)

func TestDiscover(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	base := "mem://localhost/discover"
	for name, content := range map[string]string{
		"src/a.ts":              "@log function a() {}\n",
		"src/b.tsx":             "export const b = 1;\n",
		"src/types.d.ts":        "declare function c(): void;\n",
		"src/readme.md":         "# readme\n",
		"node_modules/pkg/x.ts": "export const x = 1;\n",
	} {
		err := fs.Upload(ctx, base+"/"+name, 0644, strings.NewReader(content))
		if !assert.Nil(t, err) {
			return
		}
	}

	files, err := frontend.Discover(ctx, fs, base, frontend.SourceFiles(nil, frontend.DefaultExclude))
	if !assert.Nil(t, err) {
		return
	}
	var names []string
	for _, file := range files {
		names = append(names, path.Base(file))
	}
	assert.Equal(t, []string{"a.ts", "b.tsx"}, names)

	host := frontend.NewFileHost(frontend.WithFileService(fs))
	assert.True(t, host.FileExists(ctx, files[0]))
	file, err := host.SourceFile(ctx, files[0])
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, "@log function a() {}\n", file.Text())

	missing, err := host.SourceFile(ctx, base+"/src/none.ts")
	assert.Nil(t, err)
	assert.Nil(t, missing)
}

func TestResolveModule(t *testing.T) {
	host := frontend.NewMemoryHost(map[string]string{
		"/p/a.ts":         "",
		"/p/b.tsx":        "",
		"/p/c.d.ts":       "",
		"/p/dir/index.ts": "",
		"/p/sub/e.ts":     "",
	})
	tests := []struct {
		description string
		from        string
		specifier   string
		expect      string
		ok          bool
	}{
		{description: "ts extension", from: "/p/main.ts", specifier: "./a", expect: "/p/a.ts", ok: true},
		{description: "tsx extension", from: "/p/main.ts", specifier: "./b", expect: "/p/b.tsx", ok: true},
		{description: "declaration file", from: "/p/main.ts", specifier: "./c", expect: "/p/c.d.ts", ok: true},
		{description: "directory index", from: "/p/main.ts", specifier: "./dir", expect: "/p/dir/index.ts", ok: true},
		{description: "parent directory", from: "/p/sub/e.ts", specifier: "../a", expect: "/p/a.ts", ok: true},
		{description: "js specifier", from: "/p/main.ts", specifier: "./a.js", expect: "/p/a.ts", ok: true},
		{description: "bare package", from: "/p/main.ts", specifier: "lodash"},
		{description: "missing", from: "/p/main.ts", specifier: "./none"},
	}
	for _, tc := range tests {
		actual, ok := frontend.ResolveModule(context.Background(), host, tc.from, tc.specifier)
		assert.Equal(t, tc.ok, ok, tc.description)
		assert.Equal(t, tc.expect, actual, tc.description)
	}
}
