package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"radar/internal/radar/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
	txcontext "radar/pkg/platform/tx"
)

// PostgresStore persists radar profiles with dimensions as JSONB.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Upsert(ctx context.Context, profile *models.Profile) error {
	dims, err := json.Marshal(profile.Dimensions)
	if err != nil {
		return fmt.Errorf("marshal dimensions: %w", err)
	}
	_, err = s.execer(ctx).ExecContext(ctx, `
		INSERT INTO radar_profiles (participant_id, dimensions, computed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (participant_id) DO UPDATE SET
			dimensions = EXCLUDED.dimensions,
			computed_at = EXCLUDED.computed_at`,
		uuid.UUID(profile.ParticipantID), dims, profile.ComputedAt)
	if err != nil {
		return fmt.Errorf("upsert radar profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByParticipant(ctx context.Context, participantID id.ParticipantID) (*models.Profile, error) {
	var (
		raw     []byte
		profile = &models.Profile{ParticipantID: participantID}
	)
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT dimensions, computed_at FROM radar_profiles WHERE participant_id = $1`,
		uuid.UUID(participantID)).Scan(&raw, &profile.ComputedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("radar profile: %w", sentinel.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find radar profile: %w", err)
	}
	if err := json.Unmarshal(raw, &profile.Dimensions); err != nil {
		return nil, fmt.Errorf("unmarshal dimensions: %w", err)
	}
	return profile, nil
}

func (s *PostgresStore) DeleteByParticipant(ctx context.Context, participantID id.ParticipantID) error {
	_, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM radar_profiles WHERE participant_id = $1`, uuid.UUID(participantID))
	if err != nil {
		return fmt.Errorf("delete radar profile: %w", err)
	}
	return nil
}
