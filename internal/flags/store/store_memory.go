package store

import (
	"context"
	"sync"
	"time"

	"radar/internal/flags/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

// InMemoryStore keeps flags in insertion order.
type InMemoryStore struct {
	mu    sync.RWMutex
	flags []*models.Flag
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) ReplaceUnreviewed(_ context.Context, participantID id.ParticipantID, questionNumber int, flags []*models.Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.flags[:0]
	for _, f := range s.flags {
		if f.ParticipantID == participantID && f.QuestionNumber == questionNumber && !f.IsReviewed() {
			continue
		}
		kept = append(kept, f)
	}
	s.flags = kept
	for _, f := range flags {
		cp := *f
		s.flags = append(s.flags, &cp)
	}
	return nil
}

func (s *InMemoryStore) ListByParticipant(_ context.Context, participantID id.ParticipantID) ([]*models.Flag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Flag
	for _, f := range s.flags {
		if f.ParticipantID == participantID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, flagID id.FlagID) (*models.Flag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f := s.find(flagID); f != nil {
		cp := *f
		return &cp, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) MarkReviewed(_ context.Context, flagID id.FlagID, reviewer string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.find(flagID)
	if f == nil {
		return sentinel.ErrNotFound
	}
	if f.IsReviewed() {
		return sentinel.ErrAlreadyUsed
	}
	f.ReviewedAt = &at
	f.ReviewedBy = reviewer
	return nil
}

func (s *InMemoryStore) DeleteByParticipant(_ context.Context, participantID id.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.flags[:0]
	for _, f := range s.flags {
		if f.ParticipantID != participantID {
			kept = append(kept, f)
		}
	}
	s.flags = kept
	return nil
}

func (s *InMemoryStore) find(flagID id.FlagID) *models.Flag {
	for _, f := range s.flags {
		if f.ID == flagID {
			return f
		}
	}
	return nil
}
