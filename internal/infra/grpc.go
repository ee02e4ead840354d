package infra

import (
	"github.com/umalmyha/imaging-leads/internal/handlers"
	"github.com/umalmyha/imaging-leads/internal/interceptors"
	"github.com/umalmyha/imaging-leads/proto"
	"google.golang.org/grpc"
)

// GrpcServer builds gRPC server with intake service registered
func GrpcServer(svcs *Services) *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		interceptors.LoggerUnaryInterceptor(),
		interceptors.ErrorUnaryInterceptor(interceptors.UnaryApplicableForService(proto.IntakeServiceName)),
	))
	proto.RegisterIntakeServiceServer(srv, handlers.NewIntakeGrpcHandler(svcs.Intake))
	return srv
}
