package document

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	id "aceaudit/pkg/domain"
)

// PostgresStore keeps one row per (event, document key) pair.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) SetChecklist(ctx context.Context, providerID id.ProviderID, eventID id.EventID, checklist map[string]bool) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin checklist tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx,
		`DELETE FROM event_documents WHERE event_id = $1`, eventID.String()); err != nil {
		return fmt.Errorf("reset checklist: %w", err)
	}
	for key, done := range checklist {
		if _, err := tx.Exec(ctx, `
			INSERT INTO event_documents (provider_id, event_id, document_key, satisfied)
			VALUES ($1, $2, $3, $4)`,
			providerID.String(), eventID.String(), key, done); err != nil {
			return fmt.Errorf("write checklist item: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) MarkDocument(ctx context.Context, providerID id.ProviderID, eventID id.EventID, key string, done bool) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO event_documents (provider_id, event_id, document_key, satisfied)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, document_key) DO UPDATE SET satisfied = EXCLUDED.satisfied`,
		providerID.String(), eventID.String(), key, done,
	)
	if err != nil {
		return fmt.Errorf("mark document: %w", err)
	}
	return nil
}

func (s *PostgresStore) ChecklistsByProvider(ctx context.Context, providerID id.ProviderID) (map[id.EventID]map[string]bool, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, document_key, satisfied
		FROM event_documents
		WHERE provider_id = $1`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	defer rows.Close()

	out := make(map[id.EventID]map[string]bool)
	for rows.Next() {
		var eventID id.EventID
		var key string
		var done bool
		if err := rows.Scan(&eventID, &key, &done); err != nil {
			return nil, fmt.Errorf("scan checklist row: %w", err)
		}
		if out[eventID] == nil {
			out[eventID] = make(map[string]bool)
		}
		out[eventID][key] = done
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checklists: %w", err)
	}
	return out, nil
}
