// Package meminbox is an in-memory core.Inbox and core.Sender used by
// test/scenario and cmd/sequencer's --demo flag: a single buffered
// channel, cleared by draining it non-blockingly.
package meminbox

// Inbox is an in-memory core.Inbox backed by a channel buffered to
// 256 commands; Send blocks while that buffer is full.
type Inbox struct {
	ch chan []byte
}

// New returns an empty in-memory inbox.
func New() *Inbox {
	return &Inbox{ch: make(chan []byte, 256)}
}

// Recv implements core.Receiver: it blocks until a command arrives.
func (i *Inbox) Recv() []byte {
	return <-i.ch
}

// Clear drains every pending command without blocking.
func (i *Inbox) Clear() {
	for {
		select {
		case <-i.ch:
		default:
			return
		}
	}
}

// Sender implements core.Sender against this Inbox's channel.
type Sender struct {
	inbox *Inbox
}

// NewSender returns a Sender that delivers directly to inbox.
func NewSender(inbox *Inbox) *Sender {
	return &Sender{inbox: inbox}
}

// Send enqueues command for delivery.
func (s *Sender) Send(command []byte) {
	s.inbox.ch <- command
}
