package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions(newViper())

	require.NoError(t, err)
	assert.Equal(t, FormatText, opts.Output)
	assert.False(t, opts.Color)
	assert.False(t, opts.Pager)
	assert.Equal(t, DefaultLogFile(), opts.LogFile)
}

func TestLoadOptionsNormalizesOutput(t *testing.T) {
	v := newViper()
	v.Set("output", " JSON ")

	opts, err := LoadOptions(v)

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, opts.Output)
}

func TestLoadOptionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]any
		want string
	}{
		{"unknown format", map[string]any{"output": "xml"}, "invalid output format"},
		{"pager with json", map[string]any{"output": "json", "pager": true}, "--pager"},
		{"force without save", map[string]any{"force": true}, "--force requires --save"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			for k, val := range tt.set {
				v.Set(k, val)
			}

			_, err := LoadOptions(v)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadOptionsFileExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nquiet: true\n"), 0644))

	v := newViper()
	require.NoError(t, ReadOptionsFile(v, path))

	opts, err := LoadOptions(v)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, opts.Output)
	assert.True(t, opts.Quiet)
}

func TestReadOptionsFileMissingExplicitPath(t *testing.T) {
	err := ReadOptionsFile(newViper(), filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestReadOptionsFileWithoutHomeConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.NoError(t, ReadOptionsFile(newViper(), ""))
}

func TestReadOptionsFileFromViperFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/minigrep.yaml", []byte("color: true\n"), 0644))

	v := newViper()
	v.SetFs(fs)
	require.NoError(t, ReadOptionsFile(v, "/etc/minigrep.yaml"))

	opts, err := LoadOptions(v)
	require.NoError(t, err)
	assert.True(t, opts.Color)
}
