// Package memlog is an in-memory core.Log and core.Publisher used by
// test/scenario and cmd/sequencer's --demo flag: a set of subscriber
// channels, fed by Publish and drained by Receiver.Recv.
//
// Subscribe(offset) replays a backlog of previously published events
// before handing off to the live channel, so every subscriber gets
// core.Log's full replay contract, not just a broadcast of whatever
// is published after it attaches.
package memlog

import (
	"sync"

	"github.com/cuemby/evseq/pkg/core"
)

// Log is an in-memory, non-durable core.Log and core.Publisher. Every
// published event is kept forever in memory, so it is suitable for
// tests and demos, not production use.
type Log struct {
	mu      sync.Mutex
	history [][]byte
	subs    map[int]chan []byte
	next    int
}

// New returns an empty in-memory log.
func New() *Log {
	return &Log{subs: make(map[int]chan []byte)}
}

// Publish appends event to history and wakes every live subscriber.
func (l *Log) Publish(event []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.history = append(l.history, event)
	for _, ch := range l.subs {
		ch <- event
	}
}

// TipOffset reports the number of events published so far, or 0 if
// the log is empty. Offsets in this log are 0-based, so this is one
// past the most recent event's offset rather than that offset itself;
// it is what the sequencer's replay-lag arithmetic (tip minus load
// offset minus events replayed) needs to reach 0 at the tip here.
func (l *Log) TipOffset() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint64(len(l.history))
}

// Subscribe returns a Receiver that first replays every event at
// index offset or later already in history, then streams everything
// published from then on.
func (l *Log) Subscribe(offset uint64) core.Receiver {
	l.mu.Lock()
	defer l.mu.Unlock()

	var backlog [][]byte
	if offset < uint64(len(l.history)) {
		backlog = append(backlog, l.history[offset:]...)
	}

	ch := make(chan []byte, 64)
	id := l.next
	l.next++
	l.subs[id] = ch

	return &Receiver{log: l, id: id, ch: ch, backlog: backlog}
}

// Receiver implements core.Receiver against a Log's backlog and live
// fanout.
type Receiver struct {
	log     *Log
	id      int
	ch      chan []byte
	backlog [][]byte
}

// Recv returns the next event, first draining the backlog captured at
// subscribe time.
func (r *Receiver) Recv() []byte {
	if len(r.backlog) > 0 {
		event := r.backlog[0]
		r.backlog = r.backlog[1:]
		return event
	}
	return <-r.ch
}

// Close detaches this receiver from the log's fanout.
func (r *Receiver) Close() {
	r.log.mu.Lock()
	defer r.log.mu.Unlock()
	if ch, ok := r.log.subs[r.id]; ok {
		delete(r.log.subs, r.id)
		close(ch)
	}
}
