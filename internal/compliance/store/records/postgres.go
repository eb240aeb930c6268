package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	id "aceaudit/pkg/domain"

	"aceaudit/internal/compliance/models"
)

// PostgresStore persists the paper trail in PostgreSQL. Registrations,
// certificates and feedback are scoped to a provider by joining through
// events; complaints carry the provider key directly.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) AddRegistration(ctx context.Context, _ id.ProviderID, registration *models.Registration) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO registrations (id, event_id, attendee_name, credential_type, paid, eligible, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		registration.ID.String(), registration.EventID.String(), registration.AttendeeName,
		registration.CredentialType, registration.Paid, registration.Eligible,
		registration.Status, registration.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("add registration: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddCertificate(ctx context.Context, _ id.ProviderID, certificate *models.Certificate) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO certificates (id, event_id, registration_id, issued_at)
		VALUES ($1, $2, $3, $4)`,
		certificate.ID.String(), certificate.EventID.String(),
		certificate.RegistrationID.String(), certificate.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("add certificate: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddFeedback(ctx context.Context, _ id.ProviderID, feedback *models.FeedbackResponse) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO feedback_responses (id, event_id, submitted_at, reviewed_at)
		VALUES ($1, $2, $3, $4)`,
		feedback.ID.String(), feedback.EventID.String(), feedback.SubmittedAt, feedback.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("add feedback: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddComplaint(ctx context.Context, complaint *models.Complaint) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO complaints (id, provider_id, submitter_name, body, submitted_at, status, responded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		complaint.ID.String(), complaint.ProviderID.String(), complaint.SubmitterName,
		complaint.Body, complaint.SubmittedAt, complaint.Status, complaint.RespondedAt,
	)
	if err != nil {
		return fmt.Errorf("add complaint: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRegistrationsByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Registration, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT r.id, r.event_id, r.attendee_name, r.credential_type, r.paid, r.eligible, r.status, r.created_at
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE e.provider_id = $1
		ORDER BY r.id`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*models.Registration, error) {
		var r models.Registration
		err := row.Scan(&r.ID, &r.EventID, &r.AttendeeName, &r.CredentialType,
			&r.Paid, &r.Eligible, &r.Status, &r.CreatedAt)
		return &r, err
	})
}

func (s *PostgresStore) ListCertificatesByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Certificate, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT c.id, c.event_id, c.registration_id, c.issued_at
		FROM certificates c
		JOIN events e ON e.id = c.event_id
		WHERE e.provider_id = $1
		ORDER BY c.id`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*models.Certificate, error) {
		var c models.Certificate
		err := row.Scan(&c.ID, &c.EventID, &c.RegistrationID, &c.IssuedAt)
		return &c, err
	})
}

func (s *PostgresStore) ListFeedbackByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.FeedbackResponse, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT f.id, f.event_id, f.submitted_at, f.reviewed_at
		FROM feedback_responses f
		JOIN events e ON e.id = f.event_id
		WHERE e.provider_id = $1
		ORDER BY f.id`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*models.FeedbackResponse, error) {
		var f models.FeedbackResponse
		err := row.Scan(&f.ID, &f.EventID, &f.SubmittedAt, &f.ReviewedAt)
		return &f, err
	})
}

func (s *PostgresStore) ListComplaintsByProvider(ctx context.Context, providerID id.ProviderID) ([]*models.Complaint, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, provider_id, submitter_name, body, submitted_at, status, responded_at
		FROM complaints
		WHERE provider_id = $1
		ORDER BY id`, providerID.String())
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return collect(rows, func(row pgx.Row) (*models.Complaint, error) {
		var c models.Complaint
		err := row.Scan(&c.ID, &c.ProviderID, &c.SubmitterName, &c.Body,
			&c.SubmittedAt, &c.Status, &c.RespondedAt)
		return &c, err
	})
}

func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}
