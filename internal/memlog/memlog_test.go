package memlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubscribeReplaysBacklog(t *testing.T) {
	l := New()
	l.Publish([]byte("a"))
	l.Publish([]byte("b"))

	r := l.Subscribe(0)
	require.Equal(t, []byte("a"), r.Recv())
	require.Equal(t, []byte("b"), r.Recv())
}

func TestSubscribeFromOffsetSkipsEarlier(t *testing.T) {
	l := New()
	l.Publish([]byte("a"))
	l.Publish([]byte("b"))

	r := l.Subscribe(1)
	require.Equal(t, []byte("b"), r.Recv())
}

func TestSubscribeSeesLiveEvents(t *testing.T) {
	l := New()
	r := l.Subscribe(0)

	go l.Publish([]byte("live"))

	done := make(chan []byte, 1)
	go func() { done <- r.Recv() }()

	select {
	case event := <-done:
		require.Equal(t, []byte("live"), event)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for live event")
	}
}

func TestMultipleSubscribersEachSeeLiveEvents(t *testing.T) {
	l := New()
	r1 := l.Subscribe(0)
	r2 := l.Subscribe(0)

	l.Publish([]byte("x"))

	require.Equal(t, []byte("x"), r1.Recv())
	require.Equal(t, []byte("x"), r2.Recv())
}
