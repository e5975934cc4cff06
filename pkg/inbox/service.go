package inbox

import (
	"io"

	"google.golang.org/grpc"
)

// serviceName is the fully qualified gRPC service name this package
// exposes, used both in the ServiceDesc and in the client's method
// path.
const serviceName = "evseq.Inbox"

// commandSink is what the Submit handler needs from its registered
// implementation. grpc.RegisterService requires HandlerType to be an
// interface so it can verify the implementation against it.
type commandSink interface {
	push(command []byte)
}

// ServiceDesc describes the Inbox gRPC service: a single
// client-streaming method, Submit, through which a Sender pushes
// command bytes at a Server. Register it on a *grpc.Server with
// RegisterService(&ServiceDesc, server).
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*commandSink)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Submit",
			Handler:       submitHandler,
			ClientStreams: true,
		},
	},
	Metadata: "evseq/inbox",
}

// submitMethod is the fully qualified method path a client dials to
// reach Submit.
const submitMethod = "/" + serviceName + "/Submit"

func submitHandler(srv interface{}, stream grpc.ServerStream) error {
	s := srv.(commandSink)

	for {
		var msg rawMessage
		if err := stream.RecvMsg(&msg); err != nil {
			if err == io.EOF {
				ack := rawMessage(nil)
				return stream.SendMsg(&ack)
			}
			return err
		}
		s.push([]byte(msg))
	}
}
