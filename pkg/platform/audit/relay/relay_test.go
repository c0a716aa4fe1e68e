package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	id "radar/pkg/domain"
	audit "radar/pkg/platform/audit"
	"radar/pkg/platform/audit/store/memory"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
}

func (p *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: p.err})
	}
	if p.err == nil {
		p.records = append(p.records, rs...)
	}
	return results
}

func seed(t *testing.T, store *memory.InMemoryStore, pid id.ParticipantID, n int) {
	t.Helper()
	for range n {
		require.NoError(t, store.Append(context.Background(), audit.Event{
			ParticipantID: pid,
			Action:        string(audit.EventConsentGranted),
		}))
	}
}

func TestRelayOnce(t *testing.T) {
	t.Run("publishes and marks batch", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		pid := id.NewParticipantID()
		seed(t, store, pid, 3)
		producer := &fakeProducer{}
		r := New(store, producer, "radar.audit")

		n, err := r.RelayOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		require.Len(t, producer.records, 3)
		assert.Equal(t, "radar.audit", producer.records[0].Topic)
		assert.Equal(t, pid.String(), string(producer.records[0].Key))

		pending, err := store.FetchUnpublished(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("leaves rows pending when broker fails", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		seed(t, store, id.NewParticipantID(), 2)
		r := New(store, &fakeProducer{err: errors.New("broker down")}, "radar.audit")

		_, err := r.RelayOnce(context.Background())
		require.Error(t, err)

		pending, err := store.FetchUnpublished(context.Background(), 10)
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})

	t.Run("respects batch size", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		seed(t, store, id.NewParticipantID(), 5)
		r := New(store, &fakeProducer{}, "t", WithBatchSize(2))

		n, err := r.RelayOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}
