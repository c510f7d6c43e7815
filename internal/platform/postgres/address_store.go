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

// PostgresAddressStore implements the store.AddressStore interface using a
// PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the
// AddressStore interface. If log is nil, a default logger is used.
func NewPostgresAddressStore(db store.DBTX, log *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresAddressStore{
		db:     db,
		logger: log.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// Create implements store.AddressStore.Create.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO endereco (rua, numero, complemento, cidade, cep, estado, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		address.Street,
		address.Number,
		address.Complement,
		address.City,
		address.PostalCode,
		address.State,
		address.UserID,
	).Scan(&address.ID)

	if err != nil {
		log.Error("failed to create address",
			slog.String("error", err.Error()),
			slog.Int64("user_id", address.UserID))
		return err
	}

	log.Debug("address created",
		slog.Int64("address_id", address.ID),
		slog.Int64("user_id", address.UserID))
	return nil
}

// GetByID implements store.AddressStore.GetByID.
// Returns store.ErrAddressNotFound if no address has the given id.
func (s *PostgresAddressStore) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, rua, numero, complemento, cidade, cep, estado, usuario_id
		FROM endereco
		WHERE id = $1
	`

	var address domain.Address
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&address.ID,
		&address.Street,
		&address.Number,
		&address.Complement,
		&address.City,
		&address.PostalCode,
		&address.State,
		&address.UserID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found", slog.Int64("address_id", id))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address by id",
			slog.String("error", err.Error()),
			slog.Int64("address_id", id))
		return nil, err
	}

	return &address, nil
}

// Update implements store.AddressStore.Update.
// Returns store.ErrAddressNotFound if the address does not exist.
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE endereco
		SET rua = $1, numero = $2, complemento = $3, cidade = $4, cep = $5, estado = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		address.Street,
		address.Number,
		address.Complement,
		address.City,
		address.PostalCode,
		address.State,
		address.ID,
	)

	if err != nil {
		log.Error("failed to update address",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("address_id", address.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("address not found for update",
			slog.Int64("address_id", address.ID))
		return store.ErrAddressNotFound
	}

	log.Debug("address updated", slog.Int64("address_id", address.ID))
	return nil
}
