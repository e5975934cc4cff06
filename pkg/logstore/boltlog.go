package logstore

import (
	"encoding/binary"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cuemby/evseq/pkg/core"
	evlog "github.com/cuemby/evseq/pkg/log"
)

var bucketEvents = []byte("events")

// BoltLog is a bbolt-backed core.Log and core.Publisher. The zero value
// is not usable; construct one with Open.
type BoltLog struct {
	db *bolt.DB

	mu         sync.Mutex
	subs       map[int]chan []byte
	next       int
	lastOffset uint64
}

// Open opens (creating if necessary) a bbolt database at path and
// returns a BoltLog ready to Publish and Subscribe against it.
func Open(path string) (*BoltLog, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	var lastOffset uint64
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketEvents)
		if err != nil {
			return err
		}
		if k, _ := b.Cursor().Last(); k != nil {
			lastOffset = binary.BigEndian.Uint64(k)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltLog{
		db:         db,
		subs:       make(map[int]chan []byte),
		lastOffset: lastOffset,
	}, nil
}

// Close releases the underlying database handle.
func (l *BoltLog) Close() error {
	return l.db.Close()
}

// Publish appends event to the log and wakes every live subscriber.
// It blocks until the write is durable. A commit failure is
// unrecoverable for a process that must stay consistent with the log,
// so it logs fatally rather than returning an error.
func (l *BoltLog) Publish(event []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var seq uint64
	err := l.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketEvents)
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(offsetKey(seq), event)
	})
	if err != nil {
		logger := evlog.WithComponent("logstore")
		logger.Fatal().Err(err).Msg("failed to commit event, aborting")
	}
	l.lastOffset = seq

	for _, ch := range l.subs {
		ch <- event
	}
}

// TipOffset reports the offset of the most recently committed event,
// or 0 if nothing has been published yet. Implements core.TipOffset.
func (l *BoltLog) TipOffset() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastOffset
}

// Subscribe returns a Receiver that first replays every event at or
// after offset already committed to the log, then streams every event
// published afterward. Offsets are 1-based, matching bolt's
// NextSequence; an offset of 0 replays the entire log.
func (l *BoltLog) Subscribe(offset uint64) core.Receiver {
	ch := make(chan []byte, 64)

	l.mu.Lock()
	id := l.next
	l.next++
	l.subs[id] = ch
	backlog := l.readFrom(offset)
	l.mu.Unlock()

	return &boltReceiver{
		log:     l,
		id:      id,
		ch:      ch,
		backlog: backlog,
	}
}

func (l *BoltLog) readFrom(offset uint64) [][]byte {
	var events [][]byte

	start := offsetKey(offset)
	_ = l.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketEvents).Cursor()
		for k, v := c.Seek(start); k != nil; k, v = c.Next() {
			event := make([]byte, len(v))
			copy(event, v)
			events = append(events, event)
		}
		return nil
	})

	return events
}

func (l *BoltLog) unsubscribe(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ch, ok := l.subs[id]; ok {
		delete(l.subs, id)
		close(ch)
	}
}

// boltReceiver implements core.Receiver: it drains the backlog
// collected at subscribe time before switching to the live channel.
type boltReceiver struct {
	log     *BoltLog
	id      int
	ch      chan []byte
	backlog [][]byte
}

func (r *boltReceiver) Recv() []byte {
	if len(r.backlog) > 0 {
		event := r.backlog[0]
		r.backlog = r.backlog[1:]
		return event
	}
	return <-r.ch
}

// Close detaches this receiver from the log's fanout and closes its
// live channel. Calling it again is harmless. After Close, Recv still
// returns the remaining backlog and any events already queued, then
// returns nil without blocking.
func (r *boltReceiver) Close() {
	r.log.unsubscribe(r.id)
}

func offsetKey(offset uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, offset)
	return key
}
