package interceptors

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

func httpToGrpcCode(s int) codes.Code {
	switch s {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusServiceUnavailable:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func grpcCode(err error) codes.Code {
	var pldErr *validation.PayloadError
	var businessErr *apperrors.BusinessErr
	if errors.As(err, &pldErr) || errors.As(err, &businessErr) {
		return codes.InvalidArgument
	}

	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) {
		return codes.NotFound
	}

	var storeErr *apperrors.StoreErr
	if errors.As(err, &storeErr) {
		return codes.Unavailable
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return httpToGrpcCode(echoErr.Code)
	}
	return codes.Internal
}

// ErrorUnaryInterceptor converts error retrieved from handler to gRPC error with corresponding code
func ErrorUnaryInterceptor(applicables ...UnaryInterceptorApplicable) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		if !isUnaryInterceptorApplicable(info, applicables...) {
			return h(ctx, req)
		}

		res, err := h(ctx, req)
		if err == nil {
			return res, nil
		}

		if _, ok := status.FromError(err); ok { // it is already grpc status error
			logrus.WithField("method", info.FullMethod).Errorf("grpc request failed - %v", err)
			return nil, err
		}

		code := grpcCode(err)
		entry := logrus.WithFields(logrus.Fields{"method": info.FullMethod, "code": code.String()})

		switch code {
		case codes.Internal:
			entry.Errorf("error occurred on grpc request processing - %v", err)
			return nil, status.Error(code, "Internal server error")
		case codes.Unavailable:
			entry.Errorf("error occurred on grpc request processing - %v", err)
			return nil, status.Error(code, "datastore is unavailable, please try again later")
		default:
			entry.Debugf("grpc request rejected - %v", err)
			return nil, status.Error(code, err.Error())
		}
	}
}
