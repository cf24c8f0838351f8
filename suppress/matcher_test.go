package suppress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fndecor/suppress"
)

func TestParseUnusedDeclaration(t *testing.T) {
	tests := []struct {
		description string
		text        string
		name        string
		ok          bool
	}{
		{description: "unused import", text: "'log' is declared but its value is never read.", name: "log", ok: true},
		{description: "all imports unused", text: "All imports in import declaration are unused."},
		{description: "other message", text: "Cannot find name 'log'."},
	}
	for _, tc := range tests {
		name, ok := suppress.ParseUnusedDeclaration(tc.text)
		assert.Equal(t, tc.ok, ok, tc.description)
		assert.Equal(t, tc.name, name, tc.description)
	}
}

func TestFirstImportList(t *testing.T) {
	tests := []struct {
		description string
		source      string
		expect      []string
	}{
		{description: "single line", source: "import { log, trace } from './log';", expect: []string{"log", "trace"}},
		{description: "multi line", source: "import {\n  log,\n  trace,\n} from './log';", expect: []string{"log", "trace"}},
		{description: "alias and type", source: "import { type Opts, trace as log } from './log';", expect: []string{"Opts", "log"}},
		{description: "first list only", source: "import a from 'a';\nimport { b } from 'b';\nimport { c } from 'c';", expect: []string{"b"}},
		{description: "no list", source: "import x from 'x';"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expect, suppress.FirstImportList(tc.source), tc.description)
	}
}

func TestMessagePredicates(t *testing.T) {
	assert.True(t, suppress.IsModuleNotFound("Cannot find module './log' or its corresponding type declarations."))
	assert.True(t, suppress.IsModuleNotFound("Module not found: ./log"))
	assert.False(t, suppress.IsModuleNotFound("Cannot find name 'log'."))
	assert.True(t, suppress.MentionsDecorator("Decorators are not valid here."))
	assert.True(t, suppress.MentionsDecorator("Unable to resolve signature of DECORATOR"))
	assert.False(t, suppress.MentionsDecorator("Type 'string' is not assignable to type 'number'."))
}
