package person

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/person-profile/internal/domain/person"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Describe(ctx context.Context, req *DescribeRequest) (string, error)
}

// Server implements the PersonService gRPC API.
type Server struct {
	// service provides the business logic for person operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Describe renders the person carried by the request.
func (s *Server) Describe(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	req, err := DescribeRequestFromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	description, err := s.service.Describe(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		return nil, status.Error(codes.Internal, "unable to describe person")
	}

	return wrapperspb.String(description), nil
}
