// Package memelection is a single-node core.Election used by
// test/scenario and cmd/sequencer's --demo flag. It always grants and
// always renews, since there is only ever one node in a demo run.
//
// The SetRenewsOK toggle lets scenario tests simulate a lost lease
// (lost quorum, expired TTL) without needing a second node,
// exercising the sequencer's fail-stop path the same way a real
// Election's Renew would on an unrenewable lease.
package memelection

import "sync/atomic"

// Election always grants leadership and renews it until told
// otherwise.
type Election struct {
	renewsOK atomic.Bool
}

// New returns an Election that grants leadership immediately and
// renews it indefinitely.
func New() *Election {
	e := &Election{}
	e.renewsOK.Store(true)
	return e
}

// Elect always grants leadership; there is no other node to contest
// it with.
func (e *Election) Elect() bool {
	return true
}

// Renew reports whatever SetRenewsOK last set, true by default.
func (e *Election) Renew() bool {
	return e.renewsOK.Load()
}

// SetRenewsOK controls the outcome of future Renew calls, for
// simulating a lost lease.
func (e *Election) SetRenewsOK(ok bool) {
	e.renewsOK.Store(ok)
}
