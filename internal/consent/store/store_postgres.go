package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"radar/internal/consent/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
	txcontext "radar/pkg/platform/tx"
)

// PostgresStore persists consent history in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed consent store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const selectColumns = `id, seq, subject_id, consent_type, granted, granted_at, revoked_at,
	consent_text, ip_address, user_agent, created_at`

func (s *PostgresStore) Append(ctx context.Context, record *models.Record) error {
	query := `
		INSERT INTO consent_records (id, subject_id, consent_type, granted, granted_at, revoked_at,
			consent_text, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING seq
	`
	err := s.execer(ctx).QueryRowContext(ctx, query,
		uuid.UUID(record.ID),
		uuid.UUID(record.SubjectID),
		record.Type.String(),
		record.Granted,
		nullTime(record.GrantedAt),
		nullTime(record.RevokedAt),
		record.Text,
		record.IPAddress,
		record.UserAgent,
		record.CreatedAt,
	).Scan(&record.Seq)
	if err != nil {
		return fmt.Errorf("insert consent record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Latest(ctx context.Context, subjectID id.ParticipantID, t id.ConsentType) (*models.Record, error) {
	query := `SELECT ` + selectColumns + `
		FROM consent_records
		WHERE subject_id = $1 AND consent_type = $2
		ORDER BY created_at DESC, seq DESC
		LIMIT 1`
	row := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(subjectID), t.String())
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find latest consent: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) ListBySubject(ctx context.Context, subjectID id.ParticipantID) ([]*models.Record, error) {
	query := `SELECT ` + selectColumns + `
		FROM consent_records
		WHERE subject_id = $1
		ORDER BY created_at ASC, seq ASC`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(subjectID))
	if err != nil {
		return nil, fmt.Errorf("list consents: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consent: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate consents: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) DeleteBySubject(ctx context.Context, subjectID id.ParticipantID) error {
	_, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM consent_records WHERE subject_id = $1`, uuid.UUID(subjectID))
	if err != nil {
		return fmt.Errorf("delete consents: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*models.Record, error) {
	var (
		recordID, subjectID uuid.UUID
		consentType         string
		grantedAt           sql.NullTime
		revokedAt           sql.NullTime
		r                   models.Record
	)
	err := row.Scan(&recordID, &r.Seq, &subjectID, &consentType, &r.Granted, &grantedAt, &revokedAt,
		&r.Text, &r.IPAddress, &r.UserAgent, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.ID = id.ConsentID(recordID)
	r.SubjectID = id.ParticipantID(subjectID)
	r.Type = id.ConsentType(consentType)
	if grantedAt.Valid {
		r.GrantedAt = &grantedAt.Time
	}
	if revokedAt.Valid {
		r.RevokedAt = &revokedAt.Time
	}
	return &r, nil
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
