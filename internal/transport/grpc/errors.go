package grpc

import (
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus converts an application error to a gRPC status error. Errors
// that already carry a status pass through unchanged.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch kind := domain.Classify(err); kind {
	case domain.KindMalformedInput:
		return status.Error(codes.InvalidArgument, err.Error())
	case domain.KindContractViolation:
		return status.Error(codes.FailedPrecondition, err.Error())
	case domain.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case domain.KindConflict:
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
