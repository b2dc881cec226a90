package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

// recoverUnary turns a handler panic into codes.Internal.
func recoverUnary(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc handler panicked", "method", info.FullMethod, "panic", fmt.Sprint(r))
				err = status.Error(codes.Internal, "internal server error")
			}
		}()
		return handler(ctx, req)
	}
}

// logUnary logs each call with its final status code and maps application
// errors to status errors.
func logUnary(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, cause := handler(ctx, req)
		err := toStatus(cause)

		code := status.Code(err)
		fields := []interface{}{"method", info.FullMethod, "code", code.String(), "latency_ms", time.Since(start).Milliseconds()}
		switch code {
		case codes.OK:
			log.Debug("grpc call", fields...)
		case codes.Internal, codes.Unknown, codes.Unavailable:
			log.Error("grpc call", append(fields, "error", cause)...)
		default:
			log.Warn("grpc call", fields...)
		}
		return resp, err
	}
}
