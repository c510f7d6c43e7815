package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
	"github.com/Bauumgarten/usuario/internal/service/auth"
	"github.com/Bauumgarten/usuario/internal/store"
)

// UserService orchestrates account registration, lookup, deletion and
// token-scoped updates.
type UserService struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	identity  *IdentityResolver
	merger    *Merger
	logger    *slog.Logger
}

// NewUserService creates a UserService with the given collaborators.
// If log is nil, the default logger is used.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	identity *IdentityResolver,
	merger *Merger,
	log *slog.Logger,
) *UserService {
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		userStore: userStore,
		hasher:    hasher,
		identity:  identity,
		merger:    merger,
		logger:    log.With(slog.String("component", "user_service")),
	}
}

// Register creates a new account with a hashed password.
// Returns store.ErrEmailExists when the email is already registered.
//
// The existence check and the insert are two separate store calls, so two
// concurrent registrations of the same email can both pass the check. The
// unique constraint on usuario.email is the actual enforcer; the store
// surfaces its violation as the same store.ErrEmailExists.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		return nil, err
	}

	// Fast-path check for a friendly conflict error before hashing.
	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error("failed to check email existence",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		log.Debug("attempted to register an existing email",
			slog.String("email", email))
		return nil, store.ErrEmailExists
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed

	if err := s.userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			// Lost the race against a concurrent registration.
			log.Debug("duplicate email on insert",
				slog.String("email", email))
			return nil, err
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email))
	return user, nil
}

// GetByEmail retrieves an account by exact email match.
// Returns store.ErrUserNotFound if no account has that email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to get user by email",
				slog.String("error", err.Error()),
				slog.String("email", email))
		}
		return nil, err
	}
	return user, nil
}

// EmailExists reports whether an account with the given email exists.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userStore.ExistsByEmail(ctx, email)
}

// DeleteByEmail removes the account with the given email.
// Deleting an absent email succeeds as a no-op; the delete-if-exists
// semantics are delegated to the store.
func (s *UserService) DeleteByEmail(ctx context.Context, email string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.userStore.DeleteByEmail(ctx, email); err != nil {
		log.Error("failed to delete user by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted", slog.String("email", email))
	return nil
}

// UpdateCaller resolves the caller from the Authorization header value,
// merges the patch onto the stored account and persists the result.
// A password in the patch is re-hashed before merge; an absent password
// leaves the stored hash untouched.
func (s *UserService) UpdateCaller(
	ctx context.Context,
	authHeader string,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	caller, err := s.identity.Resolve(ctx, authHeader)
	if err != nil {
		return nil, err
	}

	merged, err := s.merger.MergeUser(*caller, patch)
	if err != nil {
		log.Error("failed to merge user patch",
			slog.String("error", err.Error()),
			slog.Int64("user_id", caller.ID))
		return nil, fmt.Errorf("failed to merge user patch: %w", err)
	}

	if err := s.userStore.Update(ctx, &merged); err != nil {
		if store.IsDuplicateError(err) || store.IsNotFoundError(err) {
			return nil, err
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", merged.ID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated", slog.Int64("user_id", merged.ID))
	return &merged, nil
}
