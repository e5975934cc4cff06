/*
Package counter is a worked example of core.Logic and core.Sequencer:
a replicated increment/decrement counter.

cmd/sequencer drives it as the reference application, and
test/scenario exercises it directly: a small, fully worked
Logic/Sequencer pair that can run against any Log/Inbox/Election
implementation, in-memory or durable. A real deployment swaps it out
for its own business logic at the sequencer.Run call.

Every activation event embeds a per-instance nonce so IsActivation can
tell this instance's own activation apart from another instance's,
required so two instances racing to activate cannot both believe
themselves authoritative.
*/
package counter
