package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it can be written in YAML as a
// string ("100ms", "5s") instead of a raw integer of nanoseconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Get returns the underlying time.Duration.
func (d Duration) Get() time.Duration {
	return time.Duration(d)
}

// Config is the sequencer process's complete runtime configuration.
type Config struct {
	// NodeID identifies this instance within its Raft election group.
	NodeID string `yaml:"node_id"`
	// RaftBindAddr is where this node's Raft transport listens, and
	// the address advertised to peers.
	RaftBindAddr string `yaml:"raft_bind_addr"`
	// Bootstrap, when true, bootstraps a new single-node Raft cluster
	// on first start rather than expecting to join an existing one.
	Bootstrap bool `yaml:"bootstrap"`
	// DataDir holds the Raft log/stable/snapshot stores and the
	// durable event log's bbolt file.
	DataDir string `yaml:"data_dir"`
	// InboxAddr is where this node's gRPC Inbox server listens for
	// commands.
	InboxAddr string `yaml:"inbox_addr"`
	// InboxCapacity bounds the Inbox's pending-command ring.
	InboxCapacity int `yaml:"inbox_capacity"`
	// TickInterval is how often the sequencer's background ticker
	// fires: election attempts, lease renewals, activation and
	// heartbeat publishes, and inbox clears while Starting.
	TickInterval Duration `yaml:"tick_interval"`
	// MetricsAddr is where /metrics, /health, /ready, and /live are
	// served.
	MetricsAddr string `yaml:"metrics_addr"`
	// LogLevel and LogJSON are logging settings in pkg/log's terms.
	// cmd/sequencer does not read them; it takes its logging setup
	// from the --log-level and --log-json flags.
	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

// Default returns a Config with reasonable single-node defaults, to
// be overridden by a loaded file or flags.
func Default() Config {
	return Config{
		NodeID:        "node1",
		RaftBindAddr:  "127.0.0.1:7946",
		Bootstrap:     true,
		DataDir:       "./data",
		InboxAddr:     "127.0.0.1:7947",
		InboxCapacity: 1024,
		TickInterval:  Duration(100 * time.Millisecond),
		MetricsAddr:   "127.0.0.1:7948",
		LogLevel:      "info",
		LogJSON:       true,
	}
}

// Load reads and parses a YAML configuration file, starting from
// Default so a file only needs to override the fields it cares about.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
