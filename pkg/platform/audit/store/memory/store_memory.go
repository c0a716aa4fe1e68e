package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	id "radar/pkg/domain"
	audit "radar/pkg/platform/audit"
)

type outboxRow struct {
	entry     audit.OutboxEntry
	published bool
}

// InMemoryStore keeps events per participant and mirrors them into an
// outbox so the relay can run without Postgres.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[id.ParticipantID][]audit.Event
	outbox []*outboxRow
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[id.ParticipantID][]audit.Event)}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.ParticipantID][]audit.Event)
	s.outbox = nil
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	body, err := audit.MarshalPayload(event)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ParticipantID] = append(s.events[event.ParticipantID], event)
	s.outbox = append(s.outbox, &outboxRow{entry: audit.OutboxEntry{
		ID:          uuid.New(),
		AggregateID: event.ParticipantID.String(),
		EventType:   event.Action,
		Payload:     body,
		CreatedAt:   time.Now().UTC(),
	}})
	return nil
}

func (s *InMemoryStore) ListByParticipant(_ context.Context, participantID id.ParticipantID) ([]audit.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]audit.Event{}, s.events[participantID]...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *InMemoryStore) FetchUnpublished(_ context.Context, limit int) ([]audit.OutboxEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []audit.OutboxEntry
	for _, row := range s.outbox {
		if row.published {
			continue
		}
		out = append(out, row.entry)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkPublished(_ context.Context, ids []uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, i := range ids {
		set[i] = struct{}{}
	}
	for _, row := range s.outbox {
		if _, ok := set[row.entry.ID]; ok {
			row.published = true
		}
	}
	return nil
}
