package person

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully qualified gRPC service name.
	ServiceName = "person.v1.PersonService"
	// DescribeFullMethodName is the full method name of the Describe RPC.
	DescribeFullMethodName = "/" + ServiceName + "/Describe"
)

// PersonServiceServer is the server API for the person service.
type PersonServiceServer interface {
	Describe(ctx context.Context, req *structpb.Struct) (*wrapperspb.StringValue, error)
}

// PersonServiceClient is the client API for the person service.
type PersonServiceClient interface {
	Describe(ctx context.Context, req *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes the person service for grpc.Server registration.
//
//nolint:gochecknoglobals // grpc.ServiceDesc values are package-level by convention.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PersonServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Describe",
			Handler:    describeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "person/v1/person.proto",
}

// RegisterPersonServiceServer registers srv on the gRPC service registrar.
func RegisterPersonServiceServer(registrar grpc.ServiceRegistrar, srv PersonServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

// describeHandler decodes the request and dispatches it through the optional interceptor.
func describeHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	server, _ := srv.(PersonServiceServer)
	if interceptor == nil {
		return server.Describe(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DescribeFullMethodName,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		typed, _ := req.(*structpb.Struct)

		return server.Describe(ctx, typed)
	}

	return interceptor(ctx, in, info, handler)
}

// personServiceClient invokes the person service over a client connection.
type personServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPersonServiceClient creates a client for the person service.
//
//nolint:ireturn // Mirrors the shape of generated gRPC clients.
func NewPersonServiceClient(cc grpc.ClientConnInterface) PersonServiceClient {
	return &personServiceClient{cc: cc}
}

// Describe calls the Describe RPC.
func (c *personServiceClient) Describe(
	ctx context.Context,
	req *structpb.Struct,
	opts ...grpc.CallOption,
) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)

	if err := c.cc.Invoke(ctx, DescribeFullMethodName, req, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
