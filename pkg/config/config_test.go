package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.yaml")
	contents := `
node_id: node2
raft_bind_addr: 127.0.0.1:9001
bootstrap: false
tick_interval: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "node2", cfg.NodeID)
	require.Equal(t, "127.0.0.1:9001", cfg.RaftBindAddr)
	require.False(t, cfg.Bootstrap)
	require.Equal(t, 250*time.Millisecond, cfg.TickInterval.Get())

	// Fields the file didn't mention keep their defaults.
	require.Equal(t, Default().InboxAddr, cfg.InboxAddr)
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sequencer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_interval: not-a-duration\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
