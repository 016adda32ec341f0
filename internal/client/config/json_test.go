package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	good := filepath.Join(dir, "cli.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"server_url":"https://edvora.example","request_timeout":"2s"}`), 0o600))

	t.Run("overlays present fields", func(t *testing.T) {
		os.Args = []string{"edvora-cli", "-config", good}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://edvora.example", cfg.ServerURL)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("no file keeps config", func(t *testing.T) {
		os.Args = []string{"edvora-cli"}

		cfg := &Config{ServerURL: "http://keep"}
		parseJson(cfg)

		assert.Equal(t, "http://keep", cfg.ServerURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"edvora-cli", "-c", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
