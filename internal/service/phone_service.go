package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
	"github.com/Bauumgarten/usuario/internal/store"
)

// PhoneService orchestrates token-scoped creation and id-scoped updates of
// phones.
type PhoneService struct {
	phoneStore store.PhoneStore
	identity   *IdentityResolver
	merger     *Merger
	logger     *slog.Logger
}

// NewPhoneService creates a PhoneService with the given collaborators.
// If log is nil, the default logger is used.
func NewPhoneService(
	phoneStore store.PhoneStore,
	identity *IdentityResolver,
	merger *Merger,
	log *slog.Logger,
) *PhoneService {
	if log == nil {
		log = slog.Default()
	}
	return &PhoneService{
		phoneStore: phoneStore,
		identity:   identity,
		merger:     merger,
		logger:     log.With(slog.String("component", "phone_service")),
	}
}

// CreateForCaller resolves the caller from the Authorization header value
// and persists the phone with the caller as owner. Any ID or owner the
// client supplied on the record is discarded.
// Returns store.ErrPhoneNumberExists when the number is already taken.
func (s *PhoneService) CreateForCaller(
	ctx context.Context,
	authHeader string,
	phone domain.Phone,
) (*domain.Phone, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	caller, err := s.identity.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	phone.ID = 0
	phone.UserID = caller.ID

	if err := s.phoneStore.Create(ctx, &phone); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("duplicate phone number",
				slog.Int64("user_id", caller.ID))
			return nil, err
		}
		log.Error("failed to create phone",
			slog.String("error", err.Error()),
			slog.Int64("user_id", caller.ID))
		return nil, fmt.Errorf("failed to create phone: %w", err)
	}

	log.Info("phone created",
		slog.Int64("phone_id", phone.ID),
		slog.Int64("user_id", caller.ID))
	return &phone, nil
}

// UpdateByID merges the patch onto the phone with the given id and
// persists the result. Returns store.ErrPhoneNotFound for an unknown id.
//
// As with addresses, the lookup is by primary key only and ownership is
// not verified; this mirrors the documented contract of the id-scoped
// update operation.
func (s *PhoneService) UpdateByID(
	ctx context.Context,
	id int64,
	patch domain.PhonePatch,
) (*domain.Phone, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.phoneStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to get phone",
			slog.String("error", err.Error()),
			slog.Int64("phone_id", id))
		return nil, fmt.Errorf("failed to get phone: %w", err)
	}

	merged := s.merger.MergePhone(*existing, patch)

	if err := s.phoneStore.Update(ctx, &merged); err != nil {
		if store.IsNotFoundError(err) || store.IsDuplicateError(err) {
			return nil, err
		}
		log.Error("failed to update phone",
			slog.String("error", err.Error()),
			slog.Int64("phone_id", id))
		return nil, fmt.Errorf("failed to update phone: %w", err)
	}

	log.Info("phone updated", slog.Int64("phone_id", id))
	return &merged, nil
}
