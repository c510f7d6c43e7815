package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
	"github.com/Bauumgarten/usuario/internal/service/auth"
	"github.com/Bauumgarten/usuario/internal/store"
)

// bearerPrefix is the required prefix of the Authorization header value.
const bearerPrefix = "Bearer "

// IdentityResolver turns the raw Authorization header value into the stored
// account of the caller. All token-scoped operations go through it.
//
// Two failure modes are kept distinct so callers can tell "bad token" from
// "token valid but account gone": verification failures surface as
// auth package errors, a missing account as store.ErrUserNotFound.
type IdentityResolver struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewIdentityResolver creates an IdentityResolver with the given
// collaborators. If log is nil, the default logger is used.
func NewIdentityResolver(
	jwtService auth.JWTService,
	userStore store.UserStore,
	log *slog.Logger,
) *IdentityResolver {
	if log == nil {
		log = slog.Default()
	}
	return &IdentityResolver{
		jwtService: jwtService,
		userStore:  userStore,
		logger:     log.With(slog.String("component", "identity_resolver")),
	}
}

// Resolve validates the bearer token and returns the caller's account.
// The header value must start with "Bearer "; anything shorter or without
// the prefix fails with auth.ErrMissingToken before any token parsing or
// store lookup happens.
func (r *IdentityResolver) Resolve(ctx context.Context, authHeader string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if len(authHeader) < len(bearerPrefix) || !strings.HasPrefix(authHeader, bearerPrefix) {
		log.Debug("authorization header missing bearer prefix")
		return nil, auth.ErrMissingToken
	}

	claims, err := r.jwtService.ValidateToken(ctx, authHeader[len(bearerPrefix):])
	if err != nil {
		return nil, err
	}

	user, err := r.userStore.GetByEmail(ctx, claims.Email)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("token subject has no matching account",
				slog.String("email", claims.Email))
			return nil, err
		}
		log.Error("failed to look up token subject",
			slog.String("error", err.Error()),
			slog.String("email", claims.Email))
		return nil, fmt.Errorf("failed to resolve caller: %w", err)
	}

	return user, nil
}
