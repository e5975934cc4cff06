/*
Package sequencer runs the four-phase activation protocol that hands
writer authority between redundant instances without losing,
duplicating, or overwriting events.

# Lifecycle

	Starting ──caught up──▶ CaughtUp ──elect──▶ Leader ──own activation observed──▶ Activated

Two goroutines cooperate around a single status atom:

	foreground: replay the log through a Wrapper around the caller's
	            Sequencer, then (once its own activation is observed)
	            loop: recv command → process → publish → step.

	background: every tick, act on the current status:
	            Starting:  drop anything that piled up in the inbox.
	            CaughtUp:  try to win the election.
	            Leader:    renew the lease, publish another activation
	                       (repeated until the foreground thread sees
	                       its own copy land in the log).
	            Activated: renew the lease, publish a heartbeat.

A failed Renew is fail-stop: the default OnFatal terminates the process
immediately. There is no graceful shutdown path here. At most one
instance may be Activated at any instant, and that only holds if a
lease-losing instance stops publishing the moment it suspects it might
not be the leader anymore.

# Why the repeated activation is safe

Between winning the election and getting the activation durably at the
log tip, a deposed leader may still have events in flight. Publishing
the activation on every tick guarantees one copy eventually lands after
every straggler, and because IsActivation only recognizes this
instance's own nonce, whichever copy appears first after catch-up is
the one the foreground thread reacts to. The rest are valid, harmless,
idempotent no-op events to every consumer including this one.
*/
package sequencer
