package counter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/cuemby/evseq/pkg/core"
)

const (
	cmdIncrement = "inc"
	cmdDecrement = "dec"

	eventHeartbeat    = "heartbeat"
	activationPrefix  = "activation:"
	incrementedPrefix = "inc:"
	decrementedPrefix = "dec:"
)

// Counter is a core.Sequencer implementing a replicated increment/
// decrement counter. The zero value is not usable; construct one with
// New.
type Counter struct {
	value    int64
	caughtUp bool
	nonce    string
}

// New returns a Counter with a freshly generated activation nonce.
func New() *Counter {
	return &Counter{nonce: uuid.NewString()}
}

// Load reports the offset to resume replay from. This example keeps
// no snapshot, so it always starts from the beginning of the log and
// is immediately caught up. A real Logic would load a checkpoint and
// only flip CaughtUp once replay reaches the log's tip.
func (c *Counter) Load() uint64 {
	c.caughtUp = true
	return 0
}

// Step applies event to local state. Unrecognized events are ignored
// rather than treated as fatal, since a newer binary's events should
// not crash an older one mid-rollout.
func (c *Counter) Step(event []byte) bool {
	s := string(event)
	switch {
	case s == eventHeartbeat:
	case strings.HasPrefix(s, activationPrefix):
	case strings.HasPrefix(s, incrementedPrefix):
		if n, err := strconv.ParseInt(s[len(incrementedPrefix):], 10, 64); err == nil {
			c.value = n
		}
	case strings.HasPrefix(s, decrementedPrefix):
		if n, err := strconv.ParseInt(s[len(decrementedPrefix):], 10, 64); err == nil {
			c.value = n
		}
	}
	return true
}

// CaughtUp reports whether replay has reached the log's tip.
func (c *Counter) CaughtUp() bool {
	return c.caughtUp
}

// Process turns a command into the event it would produce, without
// mutating local state. The event only takes effect once it comes
// back around through Step, so every instance applies the same
// command in the same order it was published.
func (c *Counter) Process(command []byte) ([]byte, bool) {
	switch string(command) {
	case cmdIncrement:
		return []byte(fmt.Sprintf("%s%d", incrementedPrefix, c.value+1)), true
	case cmdDecrement:
		return []byte(fmt.Sprintf("%s%d", decrementedPrefix, c.value-1)), true
	default:
		return nil, false
	}
}

// Activator returns a generator producing this instance's activation
// event, tagged with its nonce.
func (c *Counter) Activator() core.EventGenerator {
	return func() []byte {
		return []byte(activationPrefix + c.nonce)
	}
}

// Heartbeat returns a generator producing this instance's heartbeat
// event.
func (c *Counter) Heartbeat() core.EventGenerator {
	return func() []byte {
		return []byte(eventHeartbeat)
	}
}

// IsActivation reports whether event is this instance's own
// activation, identified by its embedded nonce. A different
// instance's activation carries a different nonce and so returns
// false here.
func (c *Counter) IsActivation(event []byte) bool {
	return string(event) == activationPrefix+c.nonce
}

// Value returns the counter's current locally-applied value.
func (c *Counter) Value() int64 {
	return c.value
}
