package inbox

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func startTestServer(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	t.Cleanup(func() { lis.Close() })

	server := NewServer(8)
	gs := grpc.NewServer()
	gs.RegisterService(&ServiceDesc, server)
	go gs.Serve(lis)
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return server, conn
}

func TestSendDeliversCommandToServer(t *testing.T) {
	server, conn := startTestServer(t)

	sender := &Sender{conn: conn}
	sender.Send([]byte("command-a"))

	select {
	case got := <-server.ch:
		require.Equal(t, []byte("command-a"), got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for command")
	}
}

func TestClearDrainsPendingCommands(t *testing.T) {
	server, conn := startTestServer(t)
	sender := &Sender{conn: conn}

	sender.Send([]byte("one"))
	sender.Send([]byte("two"))

	require.Eventually(t, func() bool {
		return len(server.ch) == 2
	}, 2*time.Second, 10*time.Millisecond)

	server.Clear()
	require.Equal(t, 0, len(server.ch))
}

func TestServerDropsOldestWhenRingFull(t *testing.T) {
	server := NewServer(2)

	server.push([]byte("a"))
	server.push([]byte("b"))
	server.push([]byte("c"))

	require.Equal(t, []byte("b"), server.Recv())
	require.Equal(t, []byte("c"), server.Recv())
}
