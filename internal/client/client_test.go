package client

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/AndySun25/bookstore/internal/service"
	"github.com/AndySun25/bookstore/internal/store"
	grpcImpl "github.com/AndySun25/bookstore/internal/transport/grpc"
	pb "github.com/AndySun25/bookstore/pkg/api/inventory/v1"
	"github.com/AndySun25/bookstore/pkg/config"
	"github.com/AndySun25/bookstore/pkg/messaging"
	"github.com/AndySun25/bookstore/pkg/server"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

type ClientSuite struct {
	suite.Suite
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewService(store.NewInMemoryStore(), messaging.NopPublisher{}, logger)
	grpcServer := server.NewGRPCServer(logger, true, func(gs *grpc.Server) {
		pb.RegisterInventoryServer(gs, grpcImpl.NewServer(svc, logger))
	})

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = grpcServer.Serve(lis)
	}()

	cfg := config.GrpcClientConfig{
		Addr:    "passthrough://bufnet",
		Timeout: 2 * time.Second,
		Resilience: config.ResilienceConfig{
			Retry:          config.RetryConfig{MaxAttempts: 3, InitialBackoff: 10 * time.Millisecond},
			CircuitBreaker: config.CircuitBreakerConfig{ConsecutiveFailures: 5, ErrorRatePercent: 50, OpenTimeout: time.Second},
		},
	}
	c, err := Dial(cfg, grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	s.Require().NoError(err)
	s.client = c

	s.T().Cleanup(func() {
		_ = c.Close()
		grpcServer.Stop()
		_ = lis.Close()
	})

	for _, b := range []struct {
		title, author, price string
		amount               int64
	}{
		{"title_1", "author_1", "10.00", 1},
		{"title_2", "author_2", "15.00", 2},
		{"title_2", "author_1", "5.00", 0},
	} {
		_, err := c.AddBook(context.Background(), b.title, b.author, b.price, b.amount)
		s.Require().NoError(err)
	}
}

func (s *ClientSuite) TestAddBook_Merge() {
	resp, err := s.client.AddBook(context.Background(), "TITLE_1", "Author_1", "10", 4)

	s.Require().NoError(err)
	s.False(resp.GetCreated())
	s.Equal(int64(1), resp.GetBook().GetId())
	s.Equal(int64(5), resp.GetBook().GetStock())
}

func (s *ClientSuite) TestAddBook_StockBeyondInt32() {
	resp, err := s.client.AddBook(context.Background(), "title_3", "author_3", "1.00", 3_000_000_000)

	s.Require().NoError(err)
	s.True(resp.GetCreated())
	s.Equal(int64(3_000_000_000), resp.GetBook().GetStock())
}

func (s *ClientSuite) TestAddBook_InvalidArgument() {
	_, err := s.client.AddBook(context.Background(), "t", "a", "1.00", -1)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.AddBook(context.Background(), "t", "a", "free", 1)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.AddBook(context.Background(), "t", "a", "1e7", 1)
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.AddBook(context.Background(), "  ", "a", "1.00", 1)
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *ClientSuite) TestGetBook() {
	book, err := s.client.GetBook(context.Background(), 2)
	s.Require().NoError(err)
	s.True(proto.Equal(&pb.Book{Id: 2, Title: "title_2", Author: "author_2", Price: "15.00", Stock: 2}, book), "got %v", book)

	_, err = s.client.GetBook(context.Background(), 99)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *ClientSuite) TestListAndSearch() {
	books, err := s.client.ListBooks(context.Background())
	s.Require().NoError(err)
	s.Len(books, 3)

	author, exact := "AUTHOR_1", false
	found, err := s.client.SearchBooks(context.Background(), &pb.SearchBooksRequest{Author: &author, Partial: &exact})
	s.Require().NoError(err)
	s.Require().Len(found, 2)
	s.Equal(int64(1), found[0].GetId())
	s.Equal(int64(3), found[1].GetId())

	text := "title_2"
	found, err = s.client.SearchBooks(context.Background(), &pb.SearchBooksRequest{Text: &text})
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *ClientSuite) TestPurchase() {
	receipt, err := s.client.Purchase(context.Background(), 1, 2, 3, 99)

	s.Require().NoError(err)
	s.NotEmpty(receipt.GetReceiptId())
	s.Equal("25.00", receipt.GetTotal())
	s.Equal(int64(2), receipt.GetPurchased())
	outcomes := make([]pb.Outcome, 0, len(receipt.GetLines()))
	for _, line := range receipt.GetLines() {
		outcomes = append(outcomes, line.GetOutcome())
	}
	s.Equal([]pb.Outcome{
		pb.Outcome_OUTCOME_PURCHASED,
		pb.Outcome_OUTCOME_PURCHASED,
		pb.Outcome_OUTCOME_OUT_OF_STOCK,
		pb.Outcome_OUTCOME_NOT_FOUND,
	}, outcomes)

	book, err := s.client.GetBook(context.Background(), 1)
	s.Require().NoError(err)
	s.Zero(book.GetStock())
}

func (s *ClientSuite) TestReflection_ServesInventoryDescriptor() {
	// given
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	stream, err := reflectionpb.NewServerReflectionClient(s.client.conn).ServerReflectionInfo(ctx)
	s.Require().NoError(err)
	defer func() { _ = stream.CloseSend() }()

	// when
	err = stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: pb.Inventory_ServiceDesc.ServiceName,
		},
	})
	s.Require().NoError(err)
	resp, err := stream.Recv()
	s.Require().NoError(err)

	// then
	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	s.Require().NotEmpty(files, "error response: %v", resp.GetErrorResponse())
	var fd descriptorpb.FileDescriptorProto
	s.Require().NoError(proto.Unmarshal(files[0], &fd))
	s.Equal("inventory/v1/inventory.proto", fd.GetName())
	s.Require().Len(fd.GetService(), 1)
	methods := make([]string, 0, len(fd.GetService()[0].GetMethod()))
	for _, m := range fd.GetService()[0].GetMethod() {
		methods = append(methods, m.GetName())
	}
	s.Equal([]string{"AddBook", "GetBook", "ListBooks", "SearchBooks", "Purchase"}, methods)
}
