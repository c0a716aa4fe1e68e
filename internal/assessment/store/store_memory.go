package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"radar/internal/assessment/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

// InMemoryParticipantStore enforces one live participant per email, like the
// partial unique index in PostgreSQL.
type InMemoryParticipantStore struct {
	mu           sync.RWMutex
	participants map[id.ParticipantID]*models.Participant
}

func NewInMemoryParticipantStore() *InMemoryParticipantStore {
	return &InMemoryParticipantStore{participants: make(map[id.ParticipantID]*models.Participant)}
}

func (s *InMemoryParticipantStore) Create(_ context.Context, p *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[p.ID]; ok {
		return fmt.Errorf("participant id: %w", sentinel.ErrConflict)
	}
	if s.liveByEmail(p.Email) != nil {
		return fmt.Errorf("participant email: %w", sentinel.ErrConflict)
	}
	cp := *p
	s.participants[p.ID] = &cp
	return nil
}

func (s *InMemoryParticipantStore) FindByID(_ context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[participantID]
	if !ok {
		return nil, fmt.Errorf("participant: %w", sentinel.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

// FindByIDForUpdate is FindByID; the memory tx runner already serializes writers.
func (s *InMemoryParticipantStore) FindByIDForUpdate(ctx context.Context, participantID id.ParticipantID) (*models.Participant, error) {
	return s.FindByID(ctx, participantID)
}

func (s *InMemoryParticipantStore) FindLiveByEmail(_ context.Context, email string) (*models.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.liveByEmail(email)
	if p == nil {
		return nil, fmt.Errorf("participant: %w", sentinel.ErrNotFound)
	}
	cp := *p
	return &cp, nil
}

func (s *InMemoryParticipantStore) liveByEmail(email string) *models.Participant {
	for _, p := range s.participants {
		if p.Email == email && !p.IsDeleted() {
			return p
		}
	}
	return nil
}

func (s *InMemoryParticipantStore) Update(_ context.Context, p *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[p.ID]; !ok {
		return fmt.Errorf("participant: %w", sentinel.ErrNotFound)
	}
	cp := *p
	s.participants[p.ID] = &cp
	return nil
}

func (s *InMemoryParticipantStore) Delete(_ context.Context, participantID id.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, participantID)
	return nil
}

// ListDeletedBefore returns deleted participants whose deletion was requested
// before cutoff, oldest request first.
func (s *InMemoryParticipantStore) ListDeletedBefore(_ context.Context, cutoff time.Time, limit int) ([]id.ParticipantID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var due []*models.Participant
	for _, p := range s.participants {
		if p.IsDeleted() && p.ManuallyDeletedAt != nil && p.ManuallyDeletedAt.Before(cutoff) {
			due = append(due, p)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ManuallyDeletedAt.Before(*due[j].ManuallyDeletedAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	ids := make([]id.ParticipantID, 0, len(due))
	for _, p := range due {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// InMemoryAnswerStore keys answers by participant and question.
type InMemoryAnswerStore struct {
	mu      sync.RWMutex
	answers map[id.ParticipantID]map[int]*models.Answer
}

func NewInMemoryAnswerStore() *InMemoryAnswerStore {
	return &InMemoryAnswerStore{answers: make(map[id.ParticipantID]map[int]*models.Answer)}
}

func (s *InMemoryAnswerStore) Upsert(_ context.Context, a *models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byQuestion, ok := s.answers[a.ParticipantID]
	if !ok {
		byQuestion = make(map[int]*models.Answer)
		s.answers[a.ParticipantID] = byQuestion
	}
	cp := *a
	byQuestion[a.QuestionNumber] = &cp
	return nil
}

func (s *InMemoryAnswerStore) ListByParticipant(_ context.Context, participantID id.ParticipantID) ([]*models.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Answer, 0, len(s.answers[participantID]))
	for _, a := range s.answers[participantID] {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionNumber < out[j].QuestionNumber })
	return out, nil
}

func (s *InMemoryAnswerStore) DeleteByParticipant(_ context.Context, participantID id.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.answers, participantID)
	return nil
}
