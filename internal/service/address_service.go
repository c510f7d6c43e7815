package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
	"github.com/Bauumgarten/usuario/internal/store"
)

// AddressService orchestrates token-scoped creation and id-scoped updates
// of addresses.
type AddressService struct {
	addressStore store.AddressStore
	identity     *IdentityResolver
	merger       *Merger
	logger       *slog.Logger
}

// NewAddressService creates an AddressService with the given collaborators.
// If log is nil, the default logger is used.
func NewAddressService(
	addressStore store.AddressStore,
	identity *IdentityResolver,
	merger *Merger,
	log *slog.Logger,
) *AddressService {
	if log == nil {
		log = slog.Default()
	}
	return &AddressService{
		addressStore: addressStore,
		identity:     identity,
		merger:       merger,
		logger:       log.With(slog.String("component", "address_service")),
	}
}

// CreateForCaller resolves the caller from the Authorization header value
// and persists the address with the caller as owner. Any ID or owner the
// client supplied on the record is discarded.
func (s *AddressService) CreateForCaller(
	ctx context.Context,
	authHeader string,
	address domain.Address,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	caller, err := s.identity.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	address.ID = 0
	address.UserID = caller.ID

	if err := s.addressStore.Create(ctx, &address); err != nil {
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("user_id", caller.ID))
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	log.Info("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("user_id", caller.ID))
	return &address, nil
}

// UpdateByID merges the patch onto the address with the given id and
// persists the result. Returns store.ErrAddressNotFound for an unknown id.
//
// The lookup is by primary key only. Whether the caller owns the address is
// not verified; any holder of the endpoint can update any address. This
// mirrors the documented contract of the id-scoped update operation.
func (s *AddressService) UpdateByID(
	ctx context.Context,
	id int64,
	patch domain.AddressPatch,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.addressStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to get address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return nil, fmt.Errorf("failed to get address: %w", err)
	}

	merged := s.merger.MergeAddress(*existing, patch)

	if err := s.addressStore.Update(ctx, &merged); err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	log.Info("address updated", slog.Int64("address_id", id))
	return &merged, nil
}
