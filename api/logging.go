package api

import (
	"context"
	"fmt"
	"time"

	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs method, status code and duration of every unary call.
func LoggingInterceptor(logger general_i.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		msg := fmt.Sprintf("%s %s %s", info.FullMethod, status.Code(err), time.Since(start).Round(time.Microsecond))
		if err != nil {
			logger.Warning(fmt.Sprintf("%s: %s", msg, status.Convert(err).Message()))
		} else {
			logger.Info(msg)
		}
		return resp, err
	}
}
