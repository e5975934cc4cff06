package core

// Receiver is a linear resource that yields a single subscriber's view of
// an ordered byte stream. Recv blocks until the next payload is available.
//
// Recv never returns an error. Transient failures (reconnects, retries)
// are the implementation's burden; the contract guarantees lossless,
// order-preserving delivery to whichever single goroutine owns the
// receiver.
type Receiver interface {
	Recv() []byte
}

// Log is a durable, ordered, non-deduplicating byte stream: the system's
// source of truth. Subscribe returns a Receiver that begins at offset
// (inclusive) and yields every subsequent event in append order.
//
// The log does not deduplicate. A replay may observe the same
// application-level sequence number twice if a prior writer crashed
// mid-handoff; Logic implementations must be idempotent over replays.
type Log interface {
	Subscribe(offset uint64) Receiver
}

// TipOffset is an optional capability a Log may implement: the offset
// of the most recently committed event (0 if the log is empty), for
// observability (reporting how far a replay lags behind the live
// tip). It is deliberately not part of the Log contract itself, since
// a pure broadcast stream has no cheap way to answer it, so callers
// type-assert for it rather than require it.
type TipOffset interface {
	TipOffset() uint64
}

// Publisher appends durably to a Log. Publish blocks until the data is
// guaranteed persisted and visible to every Subscribe started after it
// returns.
//
// Publish never returns an error. If persistence becomes impossible the
// implementation must abort the process: "publish returned" must always
// mean "the event is in the log" for the activation handshake in
// pkg/sequencer to terminate. Publisher implementations must be safe for
// concurrent use.
type Publisher interface {
	Publish(event []byte)
}

// Inbox is a non-durable Receiver of commands with a Clear operation to
// drop buffered pre-leadership traffic. Latency, not durability, is the
// design goal: commands that never arrive are the client's problem to
// retry.
type Inbox interface {
	Receiver
	Clear()
}

// Sender is the client-side handle for submitting commands to a
// sequencer's Inbox. Delivery is best-effort; Send never returns an
// error and implementations retry transient failures internally.
type Sender interface {
	Send(command []byte)
}

// Election is a lease-based, at-most-one leadership primitive. The core
// places exactly two duties on an implementation: guarantee at-most-one
// live lease across all instances, and answer Renew honestly and
// promptly enough that a caller renewing faster than the lease timeout
// never loses leadership it still holds.
type Election interface {
	// Elect attempts to acquire the lease. true means this instance now
	// holds an exclusive, time-bounded lease.
	Elect() bool

	// Renew refreshes the lease. false means the lease is lost and the
	// caller must terminate immediately; continuing risks a second
	// writer.
	Renew() bool
}

// Logic is consumer-side replay state: initialize from a snapshot, apply
// one event at a time, and report when replay has reached a live point.
type Logic interface {
	// Load initializes ephemeral state, optionally from a snapshot, and
	// returns the offset replay should resume from.
	Load() uint64

	// Step applies one event. Returning false stops replay.
	Step(event []byte) bool

	// CaughtUp reports whether replay has reached a "live" point. It is
	// advisory: Step keeps being called regardless of CaughtUp's value.
	// It may be re-evaluated on every event.
	CaughtUp() bool
}

// EventGenerator produces a fresh event payload each time it is called.
// Sequencer.Activator and Sequencer.Heartbeat both return one.
type EventGenerator func() []byte

// Sequencer extends Logic with the operations needed to process
// commands into events and to recognize this instance's own activation.
//
// The lifecycle a Sequencer participates in: consume the log to rebuild
// state, acquire leadership once caught up, publish an activation event,
// and once that activation is observed in the log, begin processing
// commands. See pkg/sequencer for the driver.
type Sequencer interface {
	Logic

	// Process validates a command against current state and, if valid,
	// produces the event bytes to publish. ok is false to silently
	// reject the command.
	Process(command []byte) (event []byte, ok bool)

	// Activator returns a generator producing activation-event payloads.
	Activator() EventGenerator

	// Heartbeat returns a generator producing heartbeat payloads.
	Heartbeat() EventGenerator

	// IsActivation reports whether event is an activation THIS instance
	// produced. It must return false for another instance's activation,
	// or the handshake in pkg/sequencer cannot terminate.
	IsActivation(event []byte) bool
}
