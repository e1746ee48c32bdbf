package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigYAML = `
ligand: "ligands.sdf"
output: "out.sdf"
max_ring_size: 8
workers: 2
log:
  level: "debug"
  format: "json"
`

func createTempConfigFile(t *testing.T, content string) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "gofrag.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("gofrag", pflag.ContinueOnError)
	flags.StringP("ligand", "l", "", "")
	flags.StringP("output", "o", "", "")
	flags.StringP("fragment", "f", "", "")
	flags.String("log", "", "")
	flags.String("log_level", "", "")
	flags.Int("max_ring_size", -1, "")
	flags.Bool("no_merge_solitary", false, "")
	flags.StringP("conf-file", "c", "", "")
	return flags
}

func TestLoad_File(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "ligands.sdf", cfg.Ligand)
	assert.Equal(t, "out.sdf", cfg.Output)
	assert.Equal(t, 8, cfg.MaxRingSize)
	assert.Equal(t, 2, cfg.Workers)
	assert.True(t, cfg.MergeSolitary, "merge_solitary defaults to true")
	assert.False(t, cfg.InsFragmentID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_Defaults(t *testing.T) {
	v := NewViper()
	v.Set("ligand", "a.sdf")
	v.Set("fragment", "lib.json")
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRingSize, cfg.MaxRingSize)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	t.Setenv("GOFRAG_LOG_LEVEL", "warn")
	t.Setenv("GOFRAG_MERGE_SOLITARY", "false")
	t.Setenv("GOFRAG_WORKERS", "5")
	cfg, err := Load(NewViper(), path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.MergeSolitary)
	assert.Equal(t, 5, cfg.Workers)
}

func TestBindFlags(t *testing.T) {
	path := createTempConfigFile(t, validConfigYAML)
	t.Setenv("GOFRAG_LOG_LEVEL", "warn")
	v := NewViper()
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"-l", "other.sdf", "--log_level", "error", "--log", "run.log", "--no_merge_solitary"}))
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "other.sdf", cfg.Ligand, "flags override the file")
	assert.Equal(t, "error", cfg.Log.Level, "flags override the environment")
	assert.Equal(t, "run.log", cfg.Log.File)
	assert.Equal(t, 8, cfg.MaxRingSize, "an unchanged flag doesn't override the file")
	assert.False(t, cfg.MergeSolitary)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Ligand: "a.sdf", Output: "b.sdf", MaxRingSize: -1, Workers: 1, Log: LogConfig{Level: "info", Format: "console"}}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		msg    string
	}{
		{"no ligand", func(c *Config) { c.Ligand = "" }, "ligand is required"},
		{"no outputs", func(c *Config) { c.Output = "" }, "at least one of output and fragment"},
		{"ring size 2", func(c *Config) { c.MaxRingSize = 2 }, "max_ring_size"},
		{"ring size -2", func(c *Config) { c.MaxRingSize = -2 }, "max_ring_size"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "workers"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
	c := valid()
	c.Output = ""
	c.Fragment = "lib.json"
	assert.NoError(t, c.Validate(), "a fragment library alone is a valid output")
}
