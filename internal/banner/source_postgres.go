package banner

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// PostgresSource stores banner payloads in the `banner_payload` table. The
// newest row wins; older rows are kept as history.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// EnsureSchema creates the payload table when missing.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS banner_payload (
		payload_id SERIAL PRIMARY KEY,
		revision TEXT,
		payload JSONB NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT now()
	)`)
	return errors.Wrap(err, "ensure banner_payload")
}

// Latest returns the newest stored payload. ErrNoPayload when the table is
// empty or not reachable — startup stays resilient and falls back to seeding.
func (s *PostgresSource) Latest(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM banner_payload ORDER BY payload_id DESC LIMIT 1`).Scan(&payload)
	if err != nil {
		return nil, errors.Wrapf(ErrNoPayload, "latest: %v", err)
	}
	return payload, nil
}

// Save appends a payload row tagged with the given revision.
func (s *PostgresSource) Save(ctx context.Context, payload []byte, revision string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO banner_payload (revision, payload) VALUES ($1, $2)`, revision, payload)
	return errors.Wrap(err, "save banner payload")
}
