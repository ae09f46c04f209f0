// Package client is a Go client for the inventory gRPC API.
package client

import (
	"context"
	"fmt"

	pb "github.com/AndySun25/bookstore/pkg/api/inventory/v1"
	"github.com/AndySun25/bookstore/pkg/client/grpc/interceptors"
	"github.com/AndySun25/bookstore/pkg/config"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client calls the inventory service.
type Client struct {
	api  pb.InventoryClient
	conn *grpc.ClientConn
}

// New wraps an existing connection. The caller keeps ownership of conn.
func New(conn grpc.ClientConnInterface) *Client {
	return &Client{api: pb.NewInventoryClient(conn)}
}

// Dial connects to cfg.Addr. Every call is bounded by cfg.Timeout, transient failures are
// retried and a circuit breaker guards the connection.
func Dial(cfg config.GrpcClientConfig, opts ...grpc.DialOption) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithChainUnaryInterceptor(
			interceptors.UnaryClientTimeoutInterceptor(cfg.Timeout),
			interceptors.NewRetryInterceptor(cfg.Resilience.Retry, pb.Inventory_AddBook_FullMethodName, pb.Inventory_Purchase_FullMethodName),
			interceptors.NewCircuitBreaker(cfg.Resilience.CircuitBreaker),
		),
	}
	conn, err := grpc.NewClient(cfg.Addr, append(dialOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client connection: %w", err)
	}
	return &Client{api: pb.NewInventoryClient(conn), conn: conn}, nil
}

// Close releases the connection created by Dial. It is a no-op for clients built with New.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// AddBook adds amount copies of a book priced at price, a decimal string.
func (c *Client) AddBook(ctx context.Context, title, author, price string, amount int64) (*pb.AddBookResponse, error) {
	return c.api.AddBook(ctx, &pb.AddBookRequest{Title: title, Author: author, Price: price, Amount: amount})
}

func (c *Client) GetBook(ctx context.Context, id int64) (*pb.Book, error) {
	resp, err := c.api.GetBook(ctx, &pb.GetBookRequest{Id: id})
	if err != nil {
		return nil, err
	}
	return resp.GetBook(), nil
}

func (c *Client) ListBooks(ctx context.Context) ([]*pb.Book, error) {
	resp, err := c.api.ListBooks(ctx, &pb.ListBooksRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetBooks(), nil
}

// SearchBooks runs a structured search; nil filters are ignored.
func (c *Client) SearchBooks(ctx context.Context, req *pb.SearchBooksRequest) ([]*pb.Book, error) {
	resp, err := c.api.SearchBooks(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.GetBooks(), nil
}

func (c *Client) Purchase(ctx context.Context, ids ...int64) (*pb.PurchaseResponse, error) {
	return c.api.Purchase(ctx, &pb.PurchaseRequest{Ids: ids})
}
