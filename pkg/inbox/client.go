package inbox

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	evlog "github.com/cuemby/evseq/pkg/log"
)

// Sender is a core.Sender that delivers commands to a Server over a
// gRPC client stream. It dials lazily on the first Send and, on a
// failed send, opens a new stream on the same connection once and
// resends rather than propagating the error. Callers of core.Sender have no error return
// to observe anyway, so best-effort delivery is the whole contract.
type Sender struct {
	target string

	mu     sync.Mutex
	conn   *grpc.ClientConn
	stream grpc.ClientStream
}

// NewSender returns a Sender that delivers to the Inbox server
// listening at target.
func NewSender(target string) *Sender {
	return &Sender{target: target}
}

// Send delivers command, reopening the stream once on a failed send.
func (s *Sender) Send(command []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := evlog.WithComponent("inbox.sender")

	if err := s.ensureStream(); err != nil {
		logger.Error().Err(err).Msg("failed to open stream, dropping command")
		return
	}

	msg := rawMessage(command)
	if err := s.stream.SendMsg(&msg); err == nil {
		return
	}

	s.resetLocked()
	if err := s.ensureStream(); err != nil {
		logger.Error().Err(err).Msg("redial failed, dropping command")
		return
	}

	msg = rawMessage(command)
	if err := s.stream.SendMsg(&msg); err != nil {
		logger.Error().Err(err).Msg("resend failed, dropping command")
	}
}

// Close releases the underlying connection.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Sender) ensureStream() error {
	if s.stream != nil {
		return nil
	}

	if s.conn == nil {
		conn, err := grpc.NewClient(s.target, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return err
		}
		s.conn = conn
	}

	stream, err := s.conn.NewStream(
		context.Background(),
		&grpc.StreamDesc{StreamName: "Submit", ClientStreams: true},
		submitMethod,
		grpc.CallContentSubtype(rawCodec{}.Name()),
	)
	if err != nil {
		return err
	}

	s.stream = stream
	return nil
}

func (s *Sender) resetLocked() {
	s.stream = nil
}
