package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"radar/internal/assessment/models"
	"radar/internal/platform/postgres"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
	txcontext "radar/pkg/platform/tx"
)

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func execer(ctx context.Context, db *sql.DB) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return db
}

// PostgresParticipantStore persists participants. The partial unique index
// on email for live rows turns concurrent creates into ErrConflict.
type PostgresParticipantStore struct {
	db *sql.DB
}

func NewPostgresParticipantStore(db *sql.DB) *PostgresParticipantStore {
	return &PostgresParticipantStore{db: db}
}

const participantColumns = `id, email, auth_user_id, status, created_at, consent_granted_at,
	assessment_started_at, completed_at, manually_deleted_at`

func (s *PostgresParticipantStore) Create(ctx context.Context, p *models.Participant) error {
	_, err := execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO participants (`+participantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.UUID(p.ID), p.Email, nullString(p.AuthUserID), string(p.Status), p.CreatedAt,
		p.ConsentGrantedAt, p.AssessmentStartedAt, p.CompletedAt, p.ManuallyDeletedAt)
	if postgres.IsUniqueViolation(err) {
		return fmt.Errorf("participant: %w", sentinel.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	return nil
}

func (s *PostgresParticipantStore) FindByID(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	row := execer(ctx, s.db).QueryRowContext(ctx, `SELECT `+participantColumns+`
		FROM participants WHERE id = $1`, uuid.UUID(participantID))
	return scanParticipant(row)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
// It must run inside RunInTx.
func (s *PostgresParticipantStore) FindByIDForUpdate(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	row := execer(ctx, s.db).QueryRowContext(ctx, `SELECT `+participantColumns+`
		FROM participants WHERE id = $1 FOR UPDATE`, uuid.UUID(participantID))
	return scanParticipant(row)
}

func (s *PostgresParticipantStore) FindLiveByEmail(ctx context.Context, email string) (*models.Participant, error) {
	row := execer(ctx, s.db).QueryRowContext(ctx, `SELECT `+participantColumns+`
		FROM participants WHERE email = $1 AND status <> 'deleted'`, email)
	return scanParticipant(row)
}

func (s *PostgresParticipantStore) Update(ctx context.Context, p *models.Participant) error {
	res, err := execer(ctx, s.db).ExecContext(ctx, `
		UPDATE participants SET
			status = $2,
			consent_granted_at = $3,
			assessment_started_at = $4,
			completed_at = $5,
			manually_deleted_at = $6
		WHERE id = $1`,
		uuid.UUID(p.ID), string(p.Status), p.ConsentGrantedAt, p.AssessmentStartedAt, p.CompletedAt, p.ManuallyDeletedAt)
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update participant: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("participant: %w", sentinel.ErrNotFound)
	}
	return nil
}

func (s *PostgresParticipantStore) Delete(ctx context.Context, participantID id.ParticipantID) error {
	_, err := execer(ctx, s.db).ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, uuid.UUID(participantID))
	if err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

func (s *PostgresParticipantStore) ListDeletedBefore(ctx context.Context, cutoff time.Time, limit int) ([]id.ParticipantID, error) {
	rows, err := execer(ctx, s.db).QueryContext(ctx, `
		SELECT id FROM participants
		WHERE status = 'deleted' AND manually_deleted_at < $1
		ORDER BY manually_deleted_at ASC
		LIMIT NULLIF($2, 0)`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("list deleted participants: %w", err)
	}
	defer rows.Close()

	var ids []id.ParticipantID
	for rows.Next() {
		var u uuid.UUID
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("scan participant id: %w", err)
		}
		ids = append(ids, id.ParticipantID(u))
	}
	return ids, rows.Err()
}

func scanParticipant(row *sql.Row) (*models.Participant, error) {
	var (
		p          models.Participant
		pid        uuid.UUID
		authUserID sql.NullString
		status     string
	)
	err := row.Scan(&pid, &p.Email, &authUserID, &status, &p.CreatedAt, &p.ConsentGrantedAt,
		&p.AssessmentStartedAt, &p.CompletedAt, &p.ManuallyDeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("participant: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scan participant: %w", err)
	}
	p.ID = id.ParticipantID(pid)
	p.AuthUserID = authUserID.String
	p.Status = models.Status(status)
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// PostgresAnswerStore persists answers, one row per participant and question.
type PostgresAnswerStore struct {
	db *sql.DB
}

func NewPostgresAnswerStore(db *sql.DB) *PostgresAnswerStore {
	return &PostgresAnswerStore{db: db}
}

func (s *PostgresAnswerStore) Upsert(ctx context.Context, a *models.Answer) error {
	_, err := execer(ctx, s.db).ExecContext(ctx, `
		INSERT INTO answers (participant_id, question_number, question_text, raw_answer, encrypted, score, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (participant_id, question_number) DO UPDATE SET
			question_text = EXCLUDED.question_text,
			raw_answer = EXCLUDED.raw_answer,
			encrypted = EXCLUDED.encrypted,
			score = EXCLUDED.score,
			answered_at = EXCLUDED.answered_at`,
		uuid.UUID(a.ParticipantID), a.QuestionNumber, a.QuestionText, a.RawAnswer, a.Encrypted, a.Score, a.AnsweredAt)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

func (s *PostgresAnswerStore) ListByParticipant(ctx context.Context, participantID id.ParticipantID) ([]*models.Answer, error) {
	rows, err := execer(ctx, s.db).QueryContext(ctx, `
		SELECT question_number, question_text, raw_answer, encrypted, score, answered_at
		FROM answers WHERE participant_id = $1
		ORDER BY question_number ASC`, uuid.UUID(participantID))
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var answers []*models.Answer
	for rows.Next() {
		a := &models.Answer{ParticipantID: participantID}
		if err := rows.Scan(&a.QuestionNumber, &a.QuestionText, &a.RawAnswer, &a.Encrypted, &a.Score, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (s *PostgresAnswerStore) DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error {
	_, err := execer(ctx, s.db).ExecContext(ctx, `DELETE FROM answers WHERE participant_id = $1`, uuid.UUID(participantID))
	if err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	return nil
}
