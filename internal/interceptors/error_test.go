package interceptors

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/imaging-leads/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

func TestErrorUnaryInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/leads.v1.IntakeService/SubmitLead"}
	interceptor := ErrorUnaryInterceptor(UnaryApplicableForService("leads.v1.IntakeService"))

	call := func(err error) error {
		_, e := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
			return nil, err
		})
		return e
	}

	t.Log("payload error is invalid argument")
	{
		err := call(validation.NewPayloadError("zip_code", "zip_code must be a 5-digit ZIP code"))
		require.Equal(t, codes.InvalidArgument, status.Code(err), "code must be invalid argument")
	}

	t.Log("store error is unavailable")
	{
		err := call(apperrors.NewStoreErr("insert", errors.New("connection refused")))
		require.Equal(t, codes.Unavailable, status.Code(err), "code must be unavailable")
	}

	t.Log("unknown error is internal and its message is hidden")
	{
		err := call(errors.New("secret details"))
		require.Equal(t, codes.Internal, status.Code(err), "code must be internal")
		require.NotContains(t, err.Error(), "secret details", "internal details must not leak")
	}

	t.Log("interceptor is skipped for other services")
	{
		other := &grpc.UnaryServerInfo{FullMethod: "/leads.v1.OtherService/Call"}
		raw := errors.New("raw")
		_, err := interceptor(context.Background(), nil, other, func(context.Context, any) (any, error) {
			return nil, raw
		})
		require.ErrorIs(t, err, raw, "error must be passed as is")
	}
}
