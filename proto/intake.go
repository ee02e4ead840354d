// Package proto describes leads.v1.IntakeService, whose messages are google.protobuf.Struct,
// so service is served and called without generated stubs.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// IntakeServiceName is full name of intake service
	IntakeServiceName = "leads.v1.IntakeService"

	submitLeadMethod    = "/leads.v1.IntakeService/SubmitLead"
	submitBookingMethod = "/leads.v1.IntakeService/SubmitBooking"
)

// IntakeServiceServer is the server API for IntakeService service
type IntakeServiceServer interface {
	SubmitLead(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitBooking(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// IntakeServiceClient is the client API for IntakeService service
type IntakeServiceClient interface {
	SubmitLead(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitBooking(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type intakeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewIntakeServiceClient builds IntakeServiceClient
func NewIntakeServiceClient(cc grpc.ClientConnInterface) IntakeServiceClient {
	return &intakeServiceClient{cc: cc}
}

func (c *intakeServiceClient) SubmitLead(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, submitLeadMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *intakeServiceClient) SubmitBooking(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, submitBookingMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterIntakeServiceServer registers IntakeServiceServer on s
func RegisterIntakeServiceServer(s grpc.ServiceRegistrar, srv IntakeServiceServer) {
	s.RegisterService(&IntakeServiceDesc, srv)
}

func submitLeadHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(IntakeServiceServer).SubmitLead(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: submitLeadMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IntakeServiceServer).SubmitLead(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func submitBookingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(IntakeServiceServer).SubmitBooking(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: submitBookingMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(IntakeServiceServer).SubmitBooking(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// IntakeServiceDesc is the grpc.ServiceDesc for IntakeService service
var IntakeServiceDesc = grpc.ServiceDesc{
	ServiceName: IntakeServiceName,
	HandlerType: (*IntakeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitLead", Handler: submitLeadHandler},
		{MethodName: "SubmitBooking", Handler: submitBookingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "leads/v1/intake.proto",
}
