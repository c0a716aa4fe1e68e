package store

import (
	"context"
	"fmt"
	"sync"

	"radar/internal/radar/models"
	id "radar/pkg/domain"
	"radar/pkg/platform/sentinel"
)

// InMemoryStore keeps one profile per participant.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.ParticipantID]*models.Profile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.ParticipantID]*models.Profile)}
}

func (s *InMemoryStore) Upsert(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ParticipantID] = clone(profile)
	return nil
}

func (s *InMemoryStore) FindByParticipant(_ context.Context, participantID id.ParticipantID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[participantID]
	if !ok {
		return nil, fmt.Errorf("radar profile: %w", sentinel.ErrNotFound)
	}
	return clone(p), nil
}

func (s *InMemoryStore) DeleteByParticipant(_ context.Context, participantID id.ParticipantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, participantID)
	return nil
}

func clone(p *models.Profile) *models.Profile {
	cp := *p
	cp.Dimensions = make(map[models.Dimension]float64, len(p.Dimensions))
	for d, v := range p.Dimensions {
		cp.Dimensions[d] = v
	}
	return &cp
}
