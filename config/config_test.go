package config_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/fndecor/config"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		description string
		ext         string
		data        string
		expect      func(c *config.Config)
		hasError    bool
	}{
		{
			description: "yaml",
			ext:         ".yaml",
			data:        "rootDir: src\noutDir: out\ntransform:\n  paramPrefix: p\ndiagnostics:\n  decoratorScope: file\n  noUnusedLocals: true\n",
			expect: func(c *config.Config) {
				c.RootDir = "src"
				c.OutDir = "out"
				c.Transform.ParamPrefix = "p"
				c.Diagnostics.DecoratorScope = "file"
				c.Diagnostics.NoUnusedLocals = true
			},
		},
		{
			description: "toml",
			ext:         ".toml",
			data:        "logLevel = \"debug\"\nextensions = [\".ts\"]\n\n[transform]\ndefaultType = \"unknown\"\n",
			expect: func(c *config.Config) {
				c.LogLevel = "debug"
				c.Extensions = []string{".ts"}
				c.Transform.DefaultType = "unknown"
			},
		},
		{
			description: "invalid scope",
			ext:         ".yml",
			data:        "diagnostics:\n  decoratorScope: module\n",
			hasError:    true,
		},
		{
			description: "invalid extension",
			ext:         ".yaml",
			data:        "extensions: [ts]\n",
			hasError:    true,
		},
	}
	for _, tc := range tests {
		actual, err := config.Decode(tc.ext, []byte(tc.data))
		if tc.hasError {
			assert.NotNil(t, err, tc.description)
			continue
		}
		if !assert.Nil(t, err, tc.description) {
			continue
		}
		expect := config.Default()
		tc.expect(expect)
		assert.Equal(t, expect, actual, tc.description)
	}

	_, err := config.Decode(".json", []byte("{}"))
	assert.True(t, errors.Is(err, config.ErrUnsupportedFormat))
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/config/fndecor.yaml"
	err := fs.Upload(ctx, URL, 0644, strings.NewReader("logLevel: warn\n"))
	if !assert.Nil(t, err) {
		return
	}
	cfg, err := config.Load(ctx, fs, URL)
	if !assert.Nil(t, err) {
		return
	}
	level, err := cfg.Level()
	assert.Nil(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = config.Load(ctx, fs, "mem://localhost/config/none.yaml")
	assert.NotNil(t, err)
}
