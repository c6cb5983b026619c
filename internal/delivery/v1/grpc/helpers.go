package grpc

import (
	"errors"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func GRPCErrorResponse(err error) error {
	switch {
	case errors.Is(err, e.ErrMissingFields):
		return status.Error(codes.InvalidArgument, e.ErrMissingFields.Error())
	case errors.Is(err, e.ErrUnknownCategory):
		return status.Error(codes.InvalidArgument, e.ErrUnknownCategory.Error())
	case errors.Is(err, e.ErrOrderNotFound):
		return status.Error(codes.NotFound, e.ErrOrderNotFound.Error())
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}
