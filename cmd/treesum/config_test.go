package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = 4\nhashfile = \"/tmp/doc\"\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "/tmp/doc", cfg.Hashfile)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfig_ExplicitMissingFails(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = [broken"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestOptions_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	cc := &commandContext{
		workersFlag:  8,
		hashfileFlag: "/flag/doc",
		cfg:          cliConfig{Workers: 2, Hashfile: "/cfg/doc"},
	}
	assert.Equal(t, "/flag/doc", cc.hashfilePath())
	assert.Len(t, cc.options(), 2)

	cc = &commandContext{cfg: cliConfig{Hashfile: "/cfg/doc"}}
	assert.Equal(t, "/cfg/doc", cc.hashfilePath())
}

func TestConfigSampleCommand(t *testing.T) {
	t.Parallel()

	cmd := newConfigCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sample"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, sampleConfig, out.String())
}

func TestSampleConfigParses(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cliConfig{}, cfg)
}
