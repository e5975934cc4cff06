package inbox

import (
	"fmt"

	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(rawCodec{})
}

// rawMessage is the only message type this package's codec knows how
// to (de)serialize: the command or ack bytes, verbatim, with no
// framing of their own.
type rawMessage []byte

// rawCodec is a passthrough grpc/encoding.Codec: Marshal and Unmarshal
// do no actual encoding, they just move bytes in and out of a
// rawMessage. Registered under Name() so callers select it per-call
// with grpc.CallContentSubtype("raw").
type rawCodec struct{}

func (rawCodec) Marshal(v interface{}) ([]byte, error) {
	m, ok := v.(*rawMessage)
	if !ok {
		return nil, fmt.Errorf("inbox: codec cannot marshal %T", v)
	}
	return []byte(*m), nil
}

func (rawCodec) Unmarshal(data []byte, v interface{}) error {
	m, ok := v.(*rawMessage)
	if !ok {
		return fmt.Errorf("inbox: codec cannot unmarshal into %T", v)
	}
	*m = append((*m)[:0], data...)
	return nil
}

func (rawCodec) Name() string { return "raw" }
