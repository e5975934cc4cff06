package electionraft

import (
	"io"

	"github.com/hashicorp/raft"
)

// noopFSM satisfies raft.FSM without replicating any application
// state. This package only uses Raft to track leadership, never to
// apply commands, so Apply/Snapshot/Restore are all no-ops.
type noopFSM struct{}

func (noopFSM) Apply(*raft.Log) interface{} { return nil }

func (noopFSM) Snapshot() (raft.FSMSnapshot, error) {
	return noopSnapshot{}, nil
}

func (noopFSM) Restore(rc io.ReadCloser) error {
	return rc.Close()
}

type noopSnapshot struct{}

func (noopSnapshot) Persist(sink raft.SnapshotSink) error {
	return sink.Close()
}

func (noopSnapshot) Release() {}
