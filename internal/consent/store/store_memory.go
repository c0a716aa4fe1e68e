package store

import (
	"context"
	"sync"

	"radar/internal/consent/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

// InMemoryStore keeps consent history per subject in insertion order.
type InMemoryStore struct {
	mu       sync.RWMutex
	seq      int64
	consents map[id.ParticipantID][]*models.Record
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{consents: make(map[id.ParticipantID][]*models.Record)}
}

func (s *InMemoryStore) Append(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	record.Seq = s.seq
	cp := *record
	s.consents[record.SubjectID] = append(s.consents[record.SubjectID], &cp)
	return nil
}

func (s *InMemoryStore) Latest(_ context.Context, subjectID id.ParticipantID, t id.ConsentType) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	latest := models.Latest(s.consents[subjectID], t)
	if latest == nil {
		return nil, sentinel.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (s *InMemoryStore) ListBySubject(_ context.Context, subjectID id.ParticipantID) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Record, 0, len(s.consents[subjectID]))
	for _, r := range s.consents[subjectID] {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (s *InMemoryStore) DeleteBySubject(_ context.Context, subjectID id.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.consents, subjectID)
	return nil
}
