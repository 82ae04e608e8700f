package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/data")
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Project)
	assert.Equal(t, []string{"**/*.md", "**/*.txt"}, cfg.Manuscripts.Patterns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/data", cfg.DataDir)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("", "/data")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Project)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `project: my-novel
manuscripts:
  patterns:
    - "chapters/**/*.md"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "my-novel", cfg.Project)
	assert.Equal(t, []string{"chapters/**/*.md"}, cfg.Manuscripts.Patterns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data", cfg.DataDir, "data dir comes from the caller, not the file")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: my-novel\n"), 0o644))

	cfg, err := Load(path, "/data")
	require.NoError(t, err)

	assert.Equal(t, "my-novel", cfg.Project)
	assert.Equal(t, []string{"**/*.md", "**/*.txt"}, cfg.Manuscripts.Patterns)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("project: [unclosed"), 0o644))

	_, err := Load(path, "/data")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty data dir",
			mutate:  func(c *Config) { c.DataDir = "" },
			wantErr: true,
		},
		{
			name:    "empty pattern",
			mutate:  func(c *Config) { c.Manuscripts.Patterns = []string{""} },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = "/data"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
