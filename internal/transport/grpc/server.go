// Package grpc provides the gRPC server for the inventory.
package grpc

import (
	"context"
	"errors"
	"log/slog"

	inverrors "github.com/AndySun25/bookstore/internal/errors"
	"github.com/AndySun25/bookstore/internal/service"
	"github.com/AndySun25/bookstore/internal/store"
	pb "github.com/AndySun25/bookstore/pkg/api/inventory/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	// Embed the unimplemented server for forward compatibility
	pb.UnimplementedInventoryServer
	service service.InventoryService
	logger  *slog.Logger
}

func NewServer(service service.InventoryService, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger.With("component", "grpc")}
}

func (s *Server) AddBook(ctx context.Context, req *pb.AddBookRequest) (*pb.AddBookResponse, error) {
	result, err := s.service.AddBook(ctx, service.BookCreateDto{
		Title:  req.GetTitle(),
		Author: req.GetAuthor(),
		Price:  req.GetPrice(),
		Amount: int(req.GetAmount()),
	})
	if err != nil {
		return nil, s.toStatus(ctx, "AddBook", err)
	}
	return &pb.AddBookResponse{Book: toBook(result.Book), Created: result.Created}, nil
}

func (s *Server) GetBook(ctx context.Context, req *pb.GetBookRequest) (*pb.GetBookResponse, error) {
	if req.GetId() < 1 {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book ID: %d", req.GetId())
	}
	found, err := s.service.GetBook(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, "GetBook", err)
	}
	return &pb.GetBookResponse{Book: toBook(*found)}, nil
}

func (s *Server) ListBooks(ctx context.Context, _ *pb.ListBooksRequest) (*pb.ListBooksResponse, error) {
	list, err := s.service.ListBooks(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "ListBooks", err)
	}
	return &pb.ListBooksResponse{Books: toBooks(list)}, nil
}

func (s *Server) SearchBooks(ctx context.Context, req *pb.SearchBooksRequest) (*pb.SearchBooksResponse, error) {
	found, err := s.service.SearchBooks(ctx, store.Criteria{
		Title:   req.Title,
		Author:  req.Author,
		Text:    req.Text,
		Partial: req.Partial,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "SearchBooks", err)
	}
	return &pb.SearchBooksResponse{Books: toBooks(found)}, nil
}

func (s *Server) Purchase(ctx context.Context, req *pb.PurchaseRequest) (*pb.PurchaseResponse, error) {
	receipt, err := s.service.Purchase(ctx, req.GetIds())
	if err != nil {
		return nil, s.toStatus(ctx, "Purchase", err)
	}
	lines := make([]*pb.PurchaseLine, 0, len(receipt.Lines))
	for _, line := range receipt.Lines {
		l := &pb.PurchaseLine{BookId: line.BookID, Outcome: toOutcome(line.Outcome)}
		if line.Book != nil {
			l.Book = toBook(*line.Book)
		}
		lines = append(lines, l)
	}
	return &pb.PurchaseResponse{
		ReceiptId: receipt.ID.String(),
		Lines:     lines,
		Total:     receipt.Total,
		Purchased: int64(receipt.Purchased),
	}, nil
}

// toStatus maps service errors onto gRPC status codes.
func (s *Server) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, inverrors.ErrBookNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, inverrors.ErrInvalidQuery),
		errors.Is(err, inverrors.ErrNegativeAmount),
		errors.Is(err, inverrors.ErrStockOverflow),
		errors.Is(err, inverrors.ErrInvalidPrice),
		errors.Is(err, inverrors.ErrInvalidBook):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		s.logger.ErrorContext(ctx, "service call failed", "method", method, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func toBook(b service.BookDto) *pb.Book {
	return &pb.Book{Id: b.ID, Title: b.Title, Author: b.Author, Price: b.Price, Stock: int64(b.Stock)}
}

func toBooks(list []service.BookDto) []*pb.Book {
	books := make([]*pb.Book, 0, len(list))
	for _, b := range list {
		books = append(books, toBook(b))
	}
	return books
}

func toOutcome(o store.Outcome) pb.Outcome {
	switch o {
	case store.Purchased:
		return pb.Outcome_OUTCOME_PURCHASED
	case store.OutOfStock:
		return pb.Outcome_OUTCOME_OUT_OF_STOCK
	case store.NotFound:
		return pb.Outcome_OUTCOME_NOT_FOUND
	default:
		return pb.Outcome_OUTCOME_UNSPECIFIED
	}
}
