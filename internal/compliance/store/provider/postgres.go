package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	id "aceaudit/pkg/domain"
	"aceaudit/pkg/platform/sentinel"

	"aceaudit/internal/compliance/models"
)

// PostgresStore persists providers and coordinators in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed provider store.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, provider *models.Provider) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO providers (id, name, accreditation_number, expiration_date, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		provider.ID.String(), provider.Name, provider.AccreditationNumber,
		provider.ExpirationDate, provider.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create provider: %w", err)
	}
	return nil
}

// SetCoordinator installs the coordinator of record. The coordinators table
// has a unique constraint on provider_id, so the upsert keeps exactly one
// active coordinator per provider.
func (s *PostgresStore) SetCoordinator(ctx context.Context, coordinator *models.Coordinator) error {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO coordinators (id, provider_id, name, credential_type, credential_number, certification_expiration_date)
		SELECT $1, $2, $3, $4, $5, $6
		WHERE EXISTS (SELECT 1 FROM providers WHERE id = $2)
		ON CONFLICT (provider_id) DO UPDATE SET
			id = EXCLUDED.id,
			name = EXCLUDED.name,
			credential_type = EXCLUDED.credential_type,
			credential_number = EXCLUDED.credential_number,
			certification_expiration_date = EXCLUDED.certification_expiration_date`,
		coordinator.ID.String(), coordinator.ProviderID.String(), coordinator.Name,
		coordinator.CredentialType, coordinator.CredentialNumber,
		coordinator.CertificationExpirationDate,
	)
	if err != nil {
		return fmt.Errorf("set coordinator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, providerID id.ProviderID) (*models.Provider, error) {
	var provider models.Provider
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, accreditation_number, expiration_date, created_at
		FROM providers WHERE id = $1`,
		providerID.String(),
	).Scan(&provider.ID, &provider.Name, &provider.AccreditationNumber,
		&provider.ExpirationDate, &provider.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return &provider, nil
}

func (s *PostgresStore) CoordinatorOf(ctx context.Context, providerID id.ProviderID) (*models.Coordinator, error) {
	var coordinator models.Coordinator
	err := s.pool.QueryRow(ctx, `
		SELECT id, provider_id, name, credential_type, credential_number, certification_expiration_date
		FROM coordinators WHERE provider_id = $1`,
		providerID.String(),
	).Scan(&coordinator.ID, &coordinator.ProviderID, &coordinator.Name,
		&coordinator.CredentialType, &coordinator.CredentialNumber,
		&coordinator.CertificationExpirationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find coordinator: %w", err)
	}
	return &coordinator, nil
}
