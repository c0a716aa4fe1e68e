package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"radar/internal/flags/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
	txcontext "radar/pkg/platform/tx"
)

// PostgresStore persists flags in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

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

const flagColumns = `id, participant_id, question_number, flag_type, flag_reason, severity,
	created_at, reviewed_at, reviewed_by`

// ReplaceUnreviewed should run inside the submission transaction so the
// delete and inserts land together.
func (s *PostgresStore) ReplaceUnreviewed(ctx context.Context, participantID id.ParticipantID, questionNumber int, flags []*models.Flag) error {
	db := s.execer(ctx)
	_, err := db.ExecContext(ctx, `
		DELETE FROM flags
		WHERE participant_id = $1 AND question_number = $2 AND reviewed_at IS NULL`,
		uuid.UUID(participantID), questionNumber)
	if err != nil {
		return fmt.Errorf("delete unreviewed flags: %w", err)
	}
	for _, f := range flags {
		_, err := db.ExecContext(ctx, `
			INSERT INTO flags (id, participant_id, question_number, flag_type, flag_reason, severity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.UUID(f.ID), uuid.UUID(f.ParticipantID), f.QuestionNumber, f.Type, f.Reason, string(f.Severity), f.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert flag: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Flag, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `SELECT `+flagColumns+`
		FROM flags WHERE participant_id = $1
		ORDER BY question_number ASC, created_at ASC`, uuid.UUID(participantID))
	if err != nil {
		return nil, fmt.Errorf("list flags: %w", err)
	}
	defer rows.Close()

	var flags []*models.Flag
	for rows.Next() {
		f, err := scanFlag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flag: %w", err)
		}
		flags = append(flags, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flags: %w", err)
	}
	return flags, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, flagID id.FlagID) (*models.Flag, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+flagColumns+` FROM flags WHERE id = $1`, uuid.UUID(flagID))
	f, err := scanFlag(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find flag: %w", err)
	}
	return f, nil
}

// MarkReviewed is a conditional update so two reviewers racing cannot both win.
func (s *PostgresStore) MarkReviewed(ctx context.Context, flagID id.FlagID, reviewer string, at time.Time) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE flags SET reviewed_at = $2, reviewed_by = $3
		WHERE id = $1 AND reviewed_at IS NULL`,
		uuid.UUID(flagID), at, reviewer)
	if err != nil {
		return fmt.Errorf("review flag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("review flag rows: %w", err)
	}
	if n == 1 {
		return nil
	}
	if _, err := s.FindByID(ctx, flagID); err != nil {
		return err
	}
	return sentinel.ErrAlreadyUsed
}

func (s *PostgresStore) DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error {
	_, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM flags WHERE participant_id = $1`, uuid.UUID(participantID))
	if err != nil {
		return fmt.Errorf("delete flags: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFlag(row scanner) (*models.Flag, error) {
	var (
		flagID, participantID uuid.UUID
		severity              string
		reviewedAt            sql.NullTime
		reviewedBy            sql.NullString
		f                     models.Flag
	)
	if err := row.Scan(&flagID, &participantID, &f.QuestionNumber, &f.Type, &f.Reason, &severity,
		&f.CreatedAt, &reviewedAt, &reviewedBy); err != nil {
		return nil, err
	}
	f.ID = id.FlagID(flagID)
	f.ParticipantID = id.ParticipantID(participantID)
	f.Severity = models.Severity(severity)
	if reviewedAt.Valid {
		f.ReviewedAt = &reviewedAt.Time
	}
	f.ReviewedBy = reviewedBy.String
	return &f, nil
}
