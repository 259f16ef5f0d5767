package address

import (
	"context"
	"fmt"

	"dudhiya-app/internal/logger"

	"go.uber.org/zap"
)

// API is the remote address-book endpoint contract.
type API interface {
	ListAddresses(ctx context.Context) ([]Address, error)
	CreateAddress(ctx context.Context, in Input) (*Address, error)
}

// Service is the address book as the cart surface sees it: list, create
// with validation, and default-address selection for checkout.
type Service interface {
	List(ctx context.Context) ([]Address, error)
	Create(ctx context.Context, in Input) (*Address, error)
	DefaultAddress(ctx context.Context) (*Address, error)
}

type service struct {
	api API
}

func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context) ([]Address, error) {
	addrs, err := s.api.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchAddresses, err)
	}
	return addrs, nil
}

func (s *service) Create(ctx context.Context, in Input) (*Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
	)

	if err := Validate(in); err != nil {
		return nil, err
	}

	addr, err := s.api.CreateAddress(ctx, in)
	if err != nil {
		log.Warn("create address failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveAddress, err)
	}
	return addr, nil
}

// DefaultAddress returns the caller's default address, nil when the address
// book is empty.
func (s *service) DefaultAddress(ctx context.Context) (*Address, error) {
	addrs, err := s.api.ListAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchAddresses, err)
	}
	return Default(addrs), nil
}
