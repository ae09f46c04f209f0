package interceptors

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	pb "github.com/AndySun25/bookstore/pkg/api/inventory/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const (
	pingMethod    = pb.Inventory_GetBook_FullMethodName
	reserveMethod = pb.Inventory_Purchase_FullMethodName
)

// mockService answers each call with the next queued code and counts calls.
// The response queue is not guarded; configure it before issuing calls.
type mockService struct {
	pb.UnimplementedInventoryServer
	callCount atomic.Int32
	responses []codes.Code
	delay     time.Duration
}

func (s *mockService) GetBook(ctx context.Context, req *pb.GetBookRequest) (*pb.GetBookResponse, error) {
	if err := s.respond(ctx); err != nil {
		return nil, err
	}
	return &pb.GetBookResponse{Book: &pb.Book{Id: req.GetId()}}, nil
}

func (s *mockService) Purchase(ctx context.Context, _ *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	if err := s.respond(ctx); err != nil {
		return nil, err
	}
	return &pb.PurchaseResponse{}, nil
}

func (s *mockService) respond(ctx context.Context) error {
	s.callCount.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return status.FromContextError(ctx.Err()).Err()
		}
	}
	if len(s.responses) > 0 {
		code := s.responses[0]
		s.responses = s.responses[1:]
		if code != codes.OK {
			return status.Error(code, "mock error")
		}
	}
	return nil
}

// setResponses configures the sequence of responses for the test server.
func (s *mockService) setResponses(responses ...codes.Code) {
	s.responses = responses
	s.callCount.Store(0)
}

// getCallCount returns the number of times the server has been called.
func (s *mockService) getCallCount() int32 {
	return s.callCount.Load()
}

// startServer serves the mock over an in-memory listener and dials it with the given interceptors.
func startServer(t *testing.T, service *mockService, interceptors ...grpc.UnaryClientInterceptor) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	pb.RegisterInventoryServer(grpcServer, service)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough://bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(interceptors...),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		grpcServer.Stop()
		_ = lis.Close()
	})
	return conn
}

func ping(ctx context.Context, conn *grpc.ClientConn) error {
	return call(ctx, conn, pingMethod)
}

func call(ctx context.Context, conn *grpc.ClientConn, method string) error {
	client := pb.NewInventoryClient(conn)
	switch method {
	case reserveMethod:
		_, err := client.Purchase(ctx, &pb.PurchaseRequest{Ids: []int64{1}})
		return err
	default:
		_, err := client.GetBook(ctx, &pb.GetBookRequest{Id: 1})
		return err
	}
}
