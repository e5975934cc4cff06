/*
Package inbox is a gRPC-transported implementation of core.Inbox and
core.Sender.

The wire payloads are opaque byte sequences with no schema to speak
of, so rather than introducing protobuf definitions and generated
stubs for what is a single bytes-in stream, this package leans on two
of grpc-go's public extension points:

  - encoding.Codec: a passthrough codec registered under the name
    "raw" that marshals/unmarshals the wire message as a plain []byte,
    with no protobuf framing.
  - A hand-written grpc.ServiceDesc describing one client-streaming
    RPC, "Submit", wired to a handler that reads raw command bytes off
    the stream and hands them to the server-side Inbox.

Server is the server half: it buffers incoming commands into a bounded
ring channel. When the ring is full, the oldest command is dropped to
make room for the newest, so a slow or absent consumer cannot make the
inbox grow without bound. Clear empties it non-blockingly; the
sequencer calls it while Starting, to drop commands received before
this instance may serve them.

Sender is the client half: it lazily dials and opens a client stream,
and on a failed send opens a new stream on the same connection once
and resends, matching a best-effort delivery contract rather than
guaranteeing exactly-once.
*/
package inbox
