package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josefigueredo/ableton-mcp-sub000/liveosc"
)

func TestLoadConfigDefaults(t *testing.T) {
	flagConfig = ""
	cfg, err := loadConfig(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, liveosc.DefaultHost, cfg.Host)
	assert.Equal(t, liveosc.DefaultSendPort, cfg.SendPort)
	assert.Equal(t, liveosc.DefaultReceivePort, cfg.ReceivePort)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "livectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"host: 10.0.0.5\nsend_port: 9000\ntimeout: 250ms\n",
	), 0o644))

	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadConfig(&cobra.Command{})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Host)
	assert.Equal(t, 9000, cfg.SendPort)
	assert.Equal(t, liveosc.DefaultReceivePort, cfg.ReceivePort, "unset file keys keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "livectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon\n"), 0o644))

	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	_, err := loadConfig(&cobra.Command{})
	require.Error(t, err)
}
