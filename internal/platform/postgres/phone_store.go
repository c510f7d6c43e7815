package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/Bauumgarten/usuario/internal/domain"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
	"github.com/Bauumgarten/usuario/internal/store"
)

// PostgresPhoneStore implements the store.PhoneStore interface using a
// PostgreSQL database as the storage backend.
type PostgresPhoneStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPhoneStore creates a new PostgreSQL implementation of the
// PhoneStore interface. If log is nil, a default logger is used.
func NewPostgresPhoneStore(db store.DBTX, log *slog.Logger) *PostgresPhoneStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresPhoneStore{
		db:     db,
		logger: log.With(slog.String("component", "phone_store")),
	}
}

// Ensure PostgresPhoneStore implements store.PhoneStore interface
var _ store.PhoneStore = (*PostgresPhoneStore)(nil)

// Create implements store.PhoneStore.Create.
// The telefone.numero unique constraint surfaces as
// store.ErrPhoneNumberExists.
func (s *PostgresPhoneStore) Create(ctx context.Context, phone *domain.Phone) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO telefone (numero, ddd, tipo, usuario_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		phone.Number,
		phone.AreaCode,
		phone.Type,
		phone.UserID,
	).Scan(&phone.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("unique violation during phone creation",
				slog.Int64("user_id", phone.UserID))
			return store.ErrPhoneNumberExists
		}
		log.Error("failed to create phone",
			slog.String("error", err.Error()),
			slog.Int64("user_id", phone.UserID))
		return err
	}

	log.Debug("phone created",
		slog.Int64("phone_id", phone.ID),
		slog.Int64("user_id", phone.UserID))
	return nil
}

// GetByID implements store.PhoneStore.GetByID.
// Returns store.ErrPhoneNotFound if no phone has the given id.
func (s *PostgresPhoneStore) GetByID(ctx context.Context, id int64) (*domain.Phone, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, numero, ddd, tipo, usuario_id
		FROM telefone
		WHERE id = $1
	`

	var phone domain.Phone
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&phone.ID,
		&phone.Number,
		&phone.AreaCode,
		&phone.Type,
		&phone.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("phone not found", slog.Int64("phone_id", id))
			return nil, store.ErrPhoneNotFound
		}
		log.Error("failed to get phone by id",
			slog.String("error", err.Error()),
			slog.Int64("phone_id", id))
		return nil, err
	}

	return &phone, nil
}

// Update implements store.PhoneStore.Update.
// Returns store.ErrPhoneNotFound if the phone does not exist and
// store.ErrPhoneNumberExists if the new number collides with another phone.
func (s *PostgresPhoneStore) Update(ctx context.Context, phone *domain.Phone) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE telefone
		SET numero = $1, ddd = $2, tipo = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		phone.Number,
		phone.AreaCode,
		phone.Type,
		phone.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("unique violation during phone update",
				slog.Int64("phone_id", phone.ID))
			return store.ErrPhoneNumberExists
		}
		log.Error("failed to update phone",
			slog.String("error", err.Error()),
			slog.Int64("phone_id", phone.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("phone_id", phone.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("phone not found for update",
			slog.Int64("phone_id", phone.ID))
		return store.ErrPhoneNotFound
	}

	log.Debug("phone updated", slog.Int64("phone_id", phone.ID))
	return nil
}
