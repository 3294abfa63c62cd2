package awpconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jfik/mera-awp/awpconfig"
)

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := awpconfig.LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, awpconfig.DefaultConfig(), cfg)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emawp.toml")

	cfg := awpconfig.DefaultConfig()
	cfg.Display.NumberFormat = "bin"
	cfg.Display.Precision = 4
	cfg.Arithmetic.DefaultRound = false
	cfg.Trace.Enabled = true
	cfg.Trace.OutputFile = "custom.log"

	require.NoError(t, cfg.SaveTo(path))

	got, err := awpconfig.LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestLoadFromPartialFilePreservesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nnumber_format = \"dec\"\n"), 0600))

	cfg, err := awpconfig.LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, "dec", cfg.Display.NumberFormat)
	require.Equal(t, awpconfig.DefaultConfig().Arithmetic.DefaultRound, cfg.Arithmetic.DefaultRound)
}

func TestLoadFromInvalidTOMLReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{"), 0600))

	_, err := awpconfig.LoadFrom(path)
	require.Error(t, err)
}
