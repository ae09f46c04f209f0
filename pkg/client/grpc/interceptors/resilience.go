// Package interceptors provides resilience interceptors for gRPC clients of the inventory API.
package interceptors

import (
	"context"
	"slices"

	"github.com/AndySun25/bookstore/pkg/config"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultBreakerName = "inventory-cb"

// transientCodes are the codes retried by the client and counted as failures by the breaker.
var transientCodes = []codes.Code{codes.Unavailable, codes.ResourceExhausted, codes.Aborted}

// NewRetryInterceptor retries transient failures with exponential backoff.
// Calls to the methods listed in once are never retried, since they change stock.
func NewRetryInterceptor(cfg config.RetryConfig, once ...string) grpc.UnaryClientInterceptor {
	retrying := retry.UnaryClientInterceptor(
		retry.WithCodes(transientCodes...),
		retry.WithMax(cfg.MaxAttempts),
		retry.WithBackoff(retry.BackoffExponential(cfg.InitialBackoff)),
	)
	if len(once) == 0 {
		return retrying
	}
	skip := make(map[string]struct{}, len(once))
	for _, method := range once {
		skip[method] = struct{}{}
	}
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if _, ok := skip[method]; ok {
			return invoker(ctx, method, req, reply, cc, opts...)
		}
		return retrying(ctx, method, req, reply, cc, invoker, opts...)
	}
}

// UnaryCircuitBreakerInterceptor returns a gRPC unary client interceptor that wraps calls in a Circuit Breaker.
// The breaker decides from the error alone; the reply is filled in by the invoker.
func UnaryCircuitBreakerInterceptor[T any](cb *gobreaker.CircuitBreaker[T]) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		var zero T
		_, err := cb.Execute(func() (T, error) {
			err := invoker(ctx, method, req, reply, cc, opts...)
			return zero, err
		})
		return err
	}
}

// NewCircuitBreaker trips after more than ConsecutiveFailures transient failures in a row,
// or when the transient failure rate exceeds ErrorRatePercent.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig) grpc.UnaryClientInterceptor {
	name := cfg.Name
	if name == "" {
		name = defaultBreakerName
	}
	st := gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			total := counts.TotalSuccesses + counts.TotalFailures
			return counts.ConsecutiveFailures > cfg.ConsecutiveFailures ||
				(total > cfg.ConsecutiveFailures &&
					float64(counts.TotalFailures)/float64(total)*100 > float64(cfg.ErrorRatePercent))
		},
		IsSuccessful: isSuccessful,
	}
	breaker := gobreaker.NewCircuitBreaker[any](st)
	return UnaryCircuitBreakerInterceptor(breaker)
}

// isSuccessful treats business errors such as NotFound or InvalidArgument as successes.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return !slices.Contains(transientCodes, st.Code())
}
