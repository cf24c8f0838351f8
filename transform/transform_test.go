package transform_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/fndecor/frontend"
	"github.com/viant/fndecor/transform"
)

func transformSource(t *testing.T, source string, opts ...transform.Option) *transform.Unit {
	file, err := frontend.NewParser().Parse(context.Background(), "main.ts", source)
	require.Nil(t, err)
	unit, err := transform.NewSession(opts...).TransformFile(context.Background(), file)
	require.Nil(t, err)
	return unit
}

func TestSession_TransformFile(t *testing.T) {
	tests := []struct {
		description  string
		source       string
		expect       string
		declarations int
		warnings     int
	}{
		{
			description:  "single decorator",
			source:       "@log function add(a: number, b: number): number { return a + b; }",
			expect:       "function add(a: number, b: number): number {\n    return log(function add(a: number, b: number): number { return a + b; })(a, b);\n}",
			declarations: 1,
		},
		{
			description:  "decorator factories",
			source:       "@f(\"x\") @g(1) function h(n){}",
			expect:       "function h(n: any) {\n    return f(\"x\")(g(1)(function h(n){}))(n);\n}",
			declarations: 1,
		},
		{
			description:  "ordering",
			source:       "@a\n@b.c\n@d()\nfunction f() {}\n",
			expect:       "function f() {\n    return a(b.c(d()(function f() {})))();\n}\n",
			declarations: 1,
		},
		{
			description:  "async",
			source:       "@d async function f(id: string) { return await load(id); }",
			expect:       "async function f(id: string) {\n    return d(async function f(id: string) { return await load(id); })(id);\n}",
			declarations: 1,
		},
		{
			description:  "generator",
			source:       "@d function* g() { yield 1; }",
			expect:       "function* g() {\n    return d(function* g() { yield 1; })();\n}",
			declarations: 1,
		},
		{
			description:  "export default",
			source:       "@d export default function f<T>(x: T): T { return x; }",
			expect:       "export default function f<T>(x: T): T {\n    return d(function f<T>(x: T): T { return x; })(x);\n}",
			declarations: 1,
		},
		{
			description:  "patterns rest and name clash",
			source:       "@d function f({x}: P, [a], arg1: number, ...rest) {}",
			expect:       "function f(arg1_1: P, arg2: any, arg1: number, ...rest: any[]) {\n    return d(function f({x}: P, [a], arg1: number, ...rest) {})(arg1_1, arg2, arg1, ...rest);\n}",
			declarations: 1,
		},
		{
			description:  "optional and default parameters",
			source:       "@d function f(a?: number, b = 2) {}",
			expect:       "function f(a?: number, b?: any) {\n    return d(function f(a?: number, b = 2) {})(a, b);\n}",
			declarations: 1,
		},
		{
			description:  "this parameter",
			source:       "@d function f(this: Window, a: number) {}",
			expect:       "function f(this: Window, a: number) {\n    return d(function f(this: Window, a: number) {}).call(this, a);\n}",
			declarations: 1,
		},
		{
			description:  "nested declaration",
			source:       "@outer function f() {\n  @inner function g() {}\n  return g;\n}",
			expect:       "function f() {\n    return outer(function f() {\n  function g() {\n      return inner(function g() {})();\n  }\n  return g;\n})();\n}",
			declarations: 2,
		},
		{
			description:  "declaration without body",
			source:       "@d declare function f(a: number): void;",
			expect:       "declare function f(a: number): void {\n    return d(function f(a: number): void {})(a);\n}",
			declarations: 1,
			warnings:     1,
		},
		{
			description:  "surrounding text kept",
			source:       "import { log } from './log';\n\n// adds\n@log\nexport function add(a: number, b: number) {\n  return a + b;\n}\n\nconst x = add(1, 2);\n",
			expect:       "import { log } from './log';\n\n// adds\nexport function add(a: number, b: number) {\n    return log(function add(a: number, b: number) {\n  return a + b;\n})(a, b);\n}\n\nconst x = add(1, 2);\n",
			declarations: 1,
		},
	}

	for _, tc := range tests {
		unit := transformSource(t, tc.source)
		if diff := cmp.Diff(tc.expect, unit.File.Text()); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", tc.description, diff)
		}
		assert.Equal(t, tc.declarations, unit.Declarations, tc.description)
		assert.Equal(t, tc.warnings, len(unit.Warnings), tc.description)
		assert.True(t, unit.Changed(), tc.description)
		assert.NotEqual(t, unit.OriginalHash, unit.Hash, tc.description)
		assert.False(t, strings.Contains(unit.File.Text(), "@"), tc.description)
	}
}

func TestSession_TransformFile_Identity(t *testing.T) {
	sources := []string{
		"function add(a: number, b: number): number { return a + b; }\n",
		"export const x = (y: number) => y * 2;\n// @log function not(){}\n",
		"class A {\n  @bound\n  run() {}\n}\n",
		"const f = function () {};\n",
	}
	for _, source := range sources {
		unit := transformSource(t, source)
		assert.False(t, unit.Changed(), source)
		assert.Same(t, unit.Original, unit.File, source)
		assert.Equal(t, source, unit.File.Text())
		assert.Equal(t, unit.OriginalHash, unit.Hash)
	}
}

func TestSession_TransformFile_Options(t *testing.T) {
	unit := transformSource(t, "@d function f([a], b) {}", transform.WithParamPrefix("p"), transform.WithDefaultType("unknown"))
	assert.Equal(t, "function f(p1: unknown, b: unknown) {\n    return d(function f([a], b) {})(p1, b);\n}", unit.File.Text())
}

func TestTransform(t *testing.T) {
	ctx := context.Background()
	host := frontend.NewMemoryHost(map[string]string{
		"/app/main.ts":  "import { log } from './log';\n@log function add(a: number, b: number): number { return a + b; }\n",
		"/app/plain.ts": "export const one = 1;\n",
		"/app/log.ts":   "export function log(fn: any) { return fn; }\n",
	})
	program, err := frontend.NewProgram(ctx, []string{"/app/main.ts", "/app/plain.ts"}, &frontend.Options{NoUnusedLocals: true}, host)
	require.Nil(t, err)

	transformed, session, err := transform.Transform(ctx, program, host)
	if !assert.Nil(t, err) {
		return
	}
	assert.Equal(t, program.RootNames(), transformed.RootNames())
	assert.Equal(t, program.Options(), transformed.Options())
	assert.Len(t, session.Units(), 2)

	main := transformed.SourceFile("/app/main.ts")
	if assert.NotNil(t, main) {
		assert.Contains(t, main.Text(), "return log(function add(a: number, b: number): number { return a + b; })(a, b);")
	}
	assert.Equal(t, program.SourceFile("/app/plain.ts").Text(), transformed.SourceFile("/app/plain.ts").Text())
	assert.Equal(t, program.SourceFile("/app/log.ts").Text(), transformed.SourceFile("/app/log.ts").Text())
	_, cached := session.Unit("/app/log.ts")
	assert.False(t, cached)

	service := frontend.NewService(transformed)
	for _, d := range service.SemanticDiagnostics(ctx, "/app/main.ts") {
		assert.NotContains(t, d.Message.String(), "Decorators")
		assert.NotContains(t, d.Message.String(), "never read")
	}

	again, err := session.Transform(ctx, program, host)
	assert.Nil(t, err)
	assert.Equal(t, transformed.SourceFile("/app/main.ts").Text(), again.SourceFile("/app/main.ts").Text())

	_, _, err = transform.Transform(ctx, nil, host)
	assert.True(t, errors.Is(err, transform.ErrNoProgram))
}

func TestCache(t *testing.T) {
	cache := transform.NewCache()
	assert.Nil(t, cache.Put(&transform.Unit{FileName: "b.ts"}))
	assert.Nil(t, cache.Put(&transform.Unit{FileName: "a.ts"}))
	err := cache.Put(&transform.Unit{FileName: "a.ts"})
	assert.True(t, errors.Is(err, transform.ErrAlreadyCached))
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, "a.ts", cache.Units()[0].FileName)
	_, ok := cache.Get("c.ts")
	assert.False(t, ok)
}

func TestPatchedHost(t *testing.T) {
	ctx := context.Background()
	host := frontend.NewMemoryHost(map[string]string{"/dep.ts": "export const a = 1;\n"})
	file, err := frontend.NewParser().Parse(ctx, "/main.ts", "const b = 2;\n")
	require.Nil(t, err)
	cache := transform.NewCache()
	require.Nil(t, cache.Put(&transform.Unit{FileName: "/main.ts", Original: file, File: file}))

	patched := transform.NewPatchedHost(cache, host)
	assert.True(t, patched.FileExists(ctx, "/main.ts"))
	assert.True(t, patched.FileExists(ctx, "/dep.ts"))
	assert.False(t, patched.FileExists(ctx, "/none.ts"))

	served, err := patched.SourceFile(ctx, "/main.ts")
	assert.Nil(t, err)
	assert.Same(t, file, served)
	dep, err := patched.SourceFile(ctx, "/dep.ts")
	assert.Nil(t, err)
	assert.Equal(t, "export const a = 1;\n", dep.Text())
	assert.Equal(t, 1, cache.Len())
}
