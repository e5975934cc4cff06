/*
Package logstore is a durable, ordered implementation of core.Log and
core.Publisher backed by go.etcd.io/bbolt.

Every published event is appended to a single bucket keyed by an 8-byte
big-endian offset allocated with Bucket.NextSequence, inside the same
transaction that writes the value. That gives the bucket's natural key
order the same order events were published in, so a cursor scan from
any starting key replays exactly the events at or after that offset.

Subscribe(offset) first drains that history with a db.View cursor scan,
then hands the caller a channel fed by an in-process fanout for
everything published from that point on, so delivery is ordered and
gap-free across the replay/live boundary.

A write that cannot be committed leaves the log in a state no
Sequencer can safely reason about, so BoltLog.Publish calls log.Fatal
rather than returning an error a caller might ignore.
*/
package logstore
