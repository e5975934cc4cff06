package electionraft

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/raft"
	raftboltdb "github.com/hashicorp/raft-boltdb"
)

// Config configures a Raft-backed Election.
type Config struct {
	// NodeID is this instance's Raft server ID. Must be unique within
	// the cluster.
	NodeID string
	// BindAddr is the local address Raft's TCP transport listens on,
	// and the address advertised to peers.
	BindAddr string
	// DataDir holds the Raft log, stable store, and snapshots.
	DataDir string
	// Bootstrap, when true, bootstraps a new cluster containing only
	// this node on first start. A node joining an existing cluster
	// should leave this false; membership changes happen out of band,
	// via the leader's AddVoter.
	Bootstrap bool
}

// Election is a core.Election backed by a hashicorp/raft group. The
// zero value is not usable; construct one with New.
type Election struct {
	raft *raft.Raft
}

// New starts (or rejoins) a Raft group per cfg and returns an Election
// that reports this node's leadership within it.
func New(cfg Config) (*Election, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	raftConfig := raft.DefaultConfig()
	raftConfig.LocalID = raft.ServerID(cfg.NodeID)
	raftConfig.Logger = hclog.New(&hclog.LoggerOptions{
		Name:   "electionraft." + cfg.NodeID,
		Output: os.Stderr,
		Level:  hclog.Warn,
	})

	addr, err := net.ResolveTCPAddr("tcp", cfg.BindAddr)
	if err != nil {
		return nil, fmt.Errorf("resolve bind addr: %w", err)
	}

	transport, err := raft.NewTCPTransport(cfg.BindAddr, addr, 3, 10*time.Second, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	snapshots, err := raft.NewFileSnapshotStore(cfg.DataDir, 2, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("create snapshot store: %w", err)
	}

	logStore, err := raftboltdb.NewBoltStore(filepath.Join(cfg.DataDir, "raft-log.db"))
	if err != nil {
		return nil, fmt.Errorf("create log store: %w", err)
	}

	stableStore, err := raftboltdb.NewBoltStore(filepath.Join(cfg.DataDir, "raft-stable.db"))
	if err != nil {
		return nil, fmt.Errorf("create stable store: %w", err)
	}

	r, err := raft.NewRaft(raftConfig, noopFSM{}, logStore, stableStore, snapshots, transport)
	if err != nil {
		return nil, fmt.Errorf("create raft instance: %w", err)
	}

	if cfg.Bootstrap {
		hasState, err := raft.HasExistingState(logStore, stableStore, snapshots)
		if err != nil {
			return nil, fmt.Errorf("check existing state: %w", err)
		}
		if !hasState {
			future := r.BootstrapCluster(raft.Configuration{
				Servers: []raft.Server{
					{ID: raftConfig.LocalID, Address: transport.LocalAddr()},
				},
			})
			if err := future.Error(); err != nil {
				return nil, fmt.Errorf("bootstrap cluster: %w", err)
			}
		}
	}

	return &Election{raft: r}, nil
}

// Elect reports whether this node currently holds Raft leadership.
// Raft runs its own election timers in the background; Elect never
// forces an election, it only observes the outcome of the last one.
func (e *Election) Elect() bool {
	return e.raft.State() == raft.Leader
}

// Renew reports whether this node can still prove leadership. Unlike
// Elect, VerifyLeader round-trips a heartbeat to a quorum of peers, so
// a stale Elect() result (leadership lost since the last observation)
// is caught here instead of silently continuing to act as leader.
func (e *Election) Renew() bool {
	return e.raft.VerifyLeader().Error() == nil
}

// Shutdown gracefully leaves the Raft group.
func (e *Election) Shutdown() error {
	return e.raft.Shutdown().Error()
}
