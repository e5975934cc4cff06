/*
Package electionraft implements core.Election on top of
github.com/hashicorp/raft: a TCP transport, raft-boltdb log and stable
stores, and a file snapshot store, bootstrapped as a single-node
cluster when configured to and no prior state exists.

A sequencer instance does not need Raft to replicate any state of its
own (the event log already does that job), so the FSM here is a bare
no-op that exists only to satisfy raft.NewRaft's signature. What the
instance wants out of Raft is simpler than full consensus: "am I the
leader right now, and can I prove I still am."

	Elect()  returns true once this node observes raft.State() == raft.Leader.
	Renew()  returns true as long as VerifyLeader() still succeeds.

Renew deliberately does not retry or wait: a single failed
verification means the lease may already be gone, and the caller is
expected to treat that as fail-stop.
*/
package electionraft
