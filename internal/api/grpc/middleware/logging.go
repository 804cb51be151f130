package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/storefront/internal/logger"
)

// Logging is an interceptor that logs ops gRPC calls and their results.
// Successful calls are logged at debug level since health probes are frequent.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	l.log(info.FullMethod, start, err)

	return resp, err
}

// HandleGRPCStream logs streaming calls such as health watches once they end.
func (l *Logging) HandleGRPCStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	err := handler(srv, ss)
	l.log(info.FullMethod, start, err)

	return err
}

func (l *Logging) log(method string, start time.Time, err error) {
	duration := time.Since(start)

	if err == nil {
		l.logger.Debug("gRPC request completed",
			"method", method,
			"duration_ms", duration.Milliseconds(),
			"status", codes.OK.String())
		return
	}

	code := codes.Internal
	if st, ok := status.FromError(err); ok {
		code = st.Code()
	}

	l.logger.Error("gRPC request failed",
		"method", method,
		"duration_ms", duration.Milliseconds(),
		"status", code.String(),
		"error", err.Error())
}
