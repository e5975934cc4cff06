/*
Package core defines the abstract contracts that the sequencer and
consumer drivers are built from: a durable ordered log, a non-durable
command inbox, a lease-based election, and the replay-driven logic that
turns events into application state.

None of these types carry a concrete backend. They are narrow on
purpose: a Log could be Kafka, NATS JetStream, or the bbolt-backed
implementation in pkg/logstore; an Election could be etcd, ZooKeeper,
or the Raft-backed implementation in pkg/electionraft. The core only
shuttles opaque bytes and offsets between them.

# Architecture

	┌────────────────────── SEQUENCER CORE ─────────────────────────┐
	│                                                                  │
	│   Inbox ──recv──▶ Sequencer.Process ──▶ Publisher.Publish      │
	│     ▲                    │                      │                │
	│     │ clear (Starting)   └── Logic.Step ◀────────┘ (self-feed)  │
	│     │                                                            │
	│   Election ──elect/renew──▶ status atom ◀──┐                   │
	│                                              │                   │
	│   Log.Subscribe(offset) ──recv──▶ Logic.Step │ (replay, then    │
	│                                              │  own activation) │
	└──────────────────────────────────────────────────────────────┘

# Status lifecycle

A sequencer instance moves through four states, monotonically:

	Starting → CaughtUp → Leader → Activated

See pkg/sequencer for the driver that walks this lifecycle, and
pkg/consumer for the simpler read-only replay loop that Logic alone
drives.

# Why no errors

Receiver.Recv, Publisher.Publish, and Inbox.Clear return no error.
Transient failures (reconnects, retries) are the implementation's
burden; a Publisher that cannot persist durably must abort the process
rather than return an error the core has no safe way to act on.
*/
package core
