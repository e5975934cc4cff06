package consumer

import "github.com/cuemby/evseq/pkg/core"

// Run subscribes to log at the offset logic.Load returns, then pumps
// events into logic.Step until it returns false.
//
// A Receiver that also has a Close method is closed when replay ends,
// so a fanout-backed Log stops queueing events for a subscriber that
// will never drain them.
func Run(log core.Log, logic core.Logic) {
	offset := logic.Load()
	receiver := log.Subscribe(offset)
	if c, ok := receiver.(interface{ Close() }); ok {
		defer c.Close()
	}

	for {
		event := receiver.Recv()
		if !logic.Step(event) {
			return
		}
	}
}
