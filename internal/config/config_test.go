package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredodrv/mwrgen/internal/workrule"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvInputFilePath, EnvOutputFilePath, EnvIncludePastDue, EnvOnError, EnvLogLevel, EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mwrgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, workrule.PolicyAbort, cfg.ErrorPolicy())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
input_file_path: plans.json
output_file_path: rules.json
include_past_due: true
on_error: skip
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "plans.json", cfg.InputFilePath)
	assert.Equal(t, "rules.json", cfg.OutputFilePath)
	assert.True(t, cfg.IncludePastDue)
	assert.Equal(t, workrule.PolicySkip, cfg.ErrorPolicy())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "input_file_path: from-file.json\ninclude_past_due: false\n")
	t.Setenv(EnvInputFilePath, "from-env.json")
	t.Setenv(EnvIncludePastDue, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.InputFilePath)
	assert.True(t, cfg.IncludePastDue)
}

func TestLoad_InvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvIncludePastDue, "maybe")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvIncludePastDue)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "input_file_path: [unterminated\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Default()
		cfg.InputFilePath = "in.json"
		cfg.OutputFilePath = "out.json"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing input", func(t *testing.T) {
		cfg := valid()
		cfg.InputFilePath = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingArguments)
	})

	t.Run("missing output", func(t *testing.T) {
		cfg := valid()
		cfg.OutputFilePath = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingArguments)
	})

	t.Run("bad policy", func(t *testing.T) {
		cfg := valid()
		cfg.OnError = "retry"
		assert.ErrorContains(t, cfg.Validate(), "retry")
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "loud"
		assert.ErrorContains(t, cfg.Validate(), "loud")
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := valid()
		cfg.LogFormat = "xml"
		assert.ErrorContains(t, cfg.Validate(), "xml")
	})
}
