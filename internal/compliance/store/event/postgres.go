package event

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

// PostgresStore persists events in PostgreSQL. Execute runs inside a
// transaction with SELECT ... FOR UPDATE, which is what makes decision
// transitions safe against concurrent writers.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const eventColumns = `id, provider_id, title, category, modality, start_date, end_date,
	capacity, approval_state, decided_by, decided_at, created_at`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.ProviderID, &e.Title, &e.Category, &e.Modality,
		&e.StartDate, &e.EndDate, &e.Capacity, &e.ApprovalState,
		&e.DecidedBy, &e.DecidedAt, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	return &e, nil
}

func (s *PostgresStore) Create(ctx context.Context, event *models.Event) error {
	var decidedBy *string
	if event.DecidedBy != nil {
		v := event.DecidedBy.String()
		decidedBy = &v
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		event.ID.String(), event.ProviderID.String(), event.Title, event.Category,
		event.Modality, event.StartDate, event.EndDate, event.Capacity,
		string(event.ApprovalState), decidedBy, event.DecidedAt, event.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, eventID id.EventID) (*models.Event, error) {
	return scanEvent(s.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, eventID.String()))
}

func (s *PostgresStore) ListByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Event, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events WHERE provider_id = $1
		ORDER BY created_at, id`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Execute loads the event under a row lock, runs validate, applies mutate and
// writes the result back, all inside one transaction. A failed validation
// rolls back without touching the row.
func (s *PostgresStore) Execute(ctx context.Context, eventID id.EventID,
	validate func(*models.Event) error, mutate func(*models.Event)) (*models.Event, error) {

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin decision tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	event, err := scanEvent(tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, eventID.String()))
	if err != nil {
		return nil, err
	}

	if err := validate(event); err != nil {
		return nil, err
	}
	mutate(event)

	var decidedBy *string
	if event.DecidedBy != nil {
		v := event.DecidedBy.String()
		decidedBy = &v
	}
	_, err = tx.Exec(ctx, `
		UPDATE events
		SET approval_state = $2, decided_by = $3, decided_at = $4
		WHERE id = $1`,
		event.ID.String(), string(event.ApprovalState), decidedBy, event.DecidedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit decision tx: %w", err)
	}
	return event, nil
}
